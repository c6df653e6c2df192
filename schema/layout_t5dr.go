package schema

import "encoding/binary"

// t5drLayout describes the Tekken 5 Dark Resurrection motbin
var t5drLayout = layout{
	header: Header{
		Slots: map[KindID]Slot{
			Requirements:        {Pointer: 0x190, Count: 0x194},
			CancelExtradata:     {Pointer: 0x1C0, Count: 0x1C4},
			Cancels:             {Pointer: 0x1B0, Count: 0x1B4},
			GroupCancels:        {Pointer: 0x1B8, Count: 0x1BC},
			PushbackExtras:      {Pointer: 0x1A8, Count: 0x1AC},
			Pushbacks:           {Pointer: 0x1A0, Count: 0x1A4},
			ReactionList:        {Pointer: 0x188, Count: 0x18C},
			ExtraMoveProperties: {Pointer: 0x1C8, Count: 0x1CC},
			Voiceclips:          {Pointer: 0x1E8, Count: 0x1EC},
			HitConditions:       {Pointer: 0x198, Count: 0x19C},
			Moves:               {Pointer: 0x1E0, Count: 0x1E4},
			InputExtradata:      {Pointer: 0x1F8, Count: 0x1FC},
			InputSequences:      {Pointer: 0x1F0, Count: 0x1F4},
		},
		Strings: []Field{
			{Name: "character_name", Offset: 0x8, Width: InvalidStringPtr()},
			{Name: "creator_name", Offset: 0xC, Width: InvalidStringPtr()},
			{Name: "date", Offset: 0x10, Width: StringPtr()},
			{Name: "fulldate", Offset: 0x14, Width: StringPtr()},
		},
		Aliases: []Field{
			{Name: "aliases", Offset: 0x18, Width: Array(36, 4)},
			{Name: "aliases2", Offset: 0x13E, Width: Array(33, 2)},
		},
		MotaStart:    0x238,
		Placeholders: []int{0x8, 0xC, 0x10, 0x14},
	},
	kinds: map[KindID]Kind{
		Requirements:        {Stride: 0x4, Fields: t5drRequirementFields},
		CancelExtradata:     {Stride: 0x4, Fields: t5drCancelExtradataFields, Scalar: true},
		Cancels:             {Stride: 0x18, Fields: t5drCancelFields},
		GroupCancels:        {Stride: 0x18, Fields: t5drCancelFields},
		PushbackExtras:      {Stride: 0x2, Fields: t5drPushbackExtraFields, Scalar: true},
		Pushbacks:           {Stride: 0xC, Fields: t5drPushbackFields},
		ReactionList:        {Stride: 0x50, Fields: t5drReactionListFields},
		ExtraMoveProperties: {Stride: 0x8, Fields: t5drExtraMovePropFields},
		Voiceclips:          {Stride: 0x2, Fields: t5drVoiceclipFields, Scalar: true},
		HitConditions:       {Stride: 0xC, Fields: t5drHitConditionFields},
		Moves:               {Stride: 0x4C, Fields: t5drMoveFields},
		InputExtradata:      {Stride: 0x4, Fields: t5drInputExtradataFields},
		InputSequences:      {Stride: 0x8, Fields: t5drInputSequenceFields, Shared: [][2]string{{"u1", "u3"}}},
		Projectiles:         {Stride: 0x88, Fields: t5drProjectileFields},
		ThrowExtras:         {Stride: 0xC, Fields: t5drThrowExtraFields},
		Throws:              {Stride: 0x8, Fields: t5drThrowFields},
		ParryRelated:        {Stride: 0x4, Fields: t5drParryRelatedFields, Scalar: true},
	},
}

var t5drRequirementFields = []Field{
	{Name: "req", Offset: 0x0, Width: Int(2)},
	{Name: "param", Offset: 0x2, Width: Int(2)},
}

var t5drCancelExtradataFields = []Field{
	{Name: "value", Offset: 0x0, Width: Int(4)},
}

var t5drCancelFields = []Field{
	{Name: "command", Offset: 0x0, Width: Int(4)},
	{Name: "extradata_idx", Offset: 0xC, Width: Int(4), Role: Ref, Target: CancelExtradata},
	{Name: "requirement_idx", Offset: 0x4, Width: Int(4), Role: Ref, Target: Requirements},
	{Name: "frame_window_start", Offset: 0x10, Width: Int(2)},
	{Name: "frame_window_end", Offset: 0x12, Width: Int(2)},
	{Name: "starting_frame", Offset: 0x14, Width: Int(2)},
	{Name: "move_id", Offset: 0x8, Width: Int(2)},
	{Name: "cancel_option", Offset: 0x16, Width: Int(2)},
}

var t5drPushbackExtraFields = []Field{
	{Name: "value", Offset: 0x0, Width: Int(2)},
}

var t5drPushbackFields = []Field{
	{Name: "val1", Offset: 0x0, Width: Int(2)},
	{Name: "val2", Offset: 0x2, Width: Int(2)},
	{Name: "val3", Offset: 0x4, Width: Int(2)},
	{Name: "pushbackextra_idx", Offset: 0x8, Width: Int(4), Role: Ref, Target: PushbackExtras},
}

var t5drReactionListFields = []Field{
	{Name: "pushback_indexes", Offset: 0x0, Width: Array(7, 4), Role: RefList, Target: Pushbacks},
	{Name: "u1list", Offset: 0x1C, Width: Array(6, 2)},
	{Name: "vertical_pushback", Offset: 0x30, Width: Int(2)},
	{Name: "standing", Offset: 0x34, Width: Int(2)},
	{Name: "ch", Offset: 0x38, Width: Int(2)},
	{Name: "crouch", Offset: 0x36, Width: Int(2)},
	{Name: "crouch_ch", Offset: 0x3A, Width: Int(2)},
	{Name: "left_side", Offset: 0x3C, Width: Int(2)},
	{Name: "left_side_crouch", Offset: 0x3E, Width: Int(2)},
	{Name: "right_side", Offset: 0x40, Width: Int(2)},
	{Name: "right_side_crouch", Offset: 0x42, Width: Int(2)},
	{Name: "back", Offset: 0x44, Width: Int(2)},
	{Name: "back_crouch", Offset: 0x46, Width: Int(2)},
	{Name: "block", Offset: 0x48, Width: Int(2)},
	{Name: "crouch_block", Offset: 0x4A, Width: Int(2)},
	{Name: "wallslump", Offset: 0x4C, Width: Int(2)},
	{Name: "downed", Offset: 0x4E, Width: Int(2)},
}

var t5drExtraMovePropFields = []Field{
	{Name: "id", Offset: 0x2, Width: Int(2)},
	{Name: "type", Offset: 0x0, Width: Int(2)},
	{Name: "value", Offset: 0x4, Width: Int(4)},
}

var t5drVoiceclipFields = []Field{
	{Name: "value", Offset: 0x0, Width: Int(2)},
}

var t5drHitConditionFields = []Field{
	{Name: "requirement_idx", Offset: 0x0, Width: Int(4), Role: Ref, Target: Requirements},
	{Name: "damage", Offset: 0x4, Width: Int(2)},
	{Name: "reaction_list_idx", Offset: 0x8, Width: Int(4), Role: Ref, Target: ReactionList},
}

var t5drMoveFields = []Field{
	{Name: "name", Offset: 0x0, Width: StringPtr()},
	{Name: "anim_name", Offset: 0x4, Width: StringPtr()},
	{Name: "anim_addr", Offset: 0x8, Width: Int(4), Role: AnimRef},
	{Name: "vuln", Offset: 0xC, Width: Int(4)},
	{Name: "hitlevel", Offset: 0x10, Width: Int(4)},
	{Name: "cancel_idx", Offset: 0x14, Width: Int(4), Role: Ref, Target: Cancels},
	{Name: "transition", Offset: 0x18, Width: Int(2)},
	{Name: "anim_max_len", Offset: 0x24, Width: Int(2)},
	{Name: "first_active_frame", Offset: 0x44, Width: Int(2)},
	{Name: "last_active_frame", Offset: 0x46, Width: Int(2)},
	{Name: "hit_condition_idx", Offset: 0x20, Width: Int(4), Role: Ref, Target: HitConditions},
	{Name: "voiceclip_idx", Offset: 0x2C, Width: Int(4), Role: Ref, Target: Voiceclips},
	{Name: "extra_properties_idx", Offset: 0x30, Width: Int(4), Role: Ref, Target: ExtraMoveProperties},
	{Name: "hitbox_location", Offset: 0x40, Width: Int(4), Order: binary.LittleEndian},
	{Name: "u2", Offset: NoOffset, Width: Int(4)},
	{Name: "u3", Offset: NoOffset, Width: Int(4)},
	{Name: "u4", Offset: NoOffset, Width: Int(4)},
	{Name: "u6", Offset: NoOffset, Width: Int(4)},
	{Name: "u7", Offset: NoOffset, Width: Int(2)},
	{Name: "u8", Offset: NoOffset, Width: Int(2)},
	{Name: "u8_2", Offset: NoOffset, Width: Int(2)},
	{Name: "u9", Offset: NoOffset, Width: Int(2)},
	{Name: "u10", Offset: NoOffset, Width: Int(4)},
	{Name: "u11", Offset: NoOffset, Width: Int(4)},
	{Name: "u12", Offset: NoOffset, Width: Int(4)},
	{Name: "u15", Offset: 0x3C, Width: Int(4)},
	{Name: "u16", Offset: NoOffset, Width: Int(2)},
	{Name: "u17", Offset: NoOffset, Width: Int(2)},
	{Name: "u18", Offset: NoOffset, Width: Int(4)},
}

var t5drInputExtradataFields = []Field{
	{Name: "u1", Offset: 0x0, Width: Int(2)},
	{Name: "u2", Offset: 0x2, Width: Int(2)},
}

var t5drInputSequenceFields = []Field{
	{Name: "u1", Offset: 0x0, Width: Int(2)},
	{Name: "u2", Offset: 0x2, Width: Int(2)},
	{Name: "u3", Offset: 0x0, Width: Int(1)},
	{Name: "extradata_idx", Offset: 0x4, Width: Int(4), Role: Ref, Target: InputExtradata},
}

var t5drProjectileFields = []Field{
	{Name: "u1", Offset: 0x0, Width: Array(48, 0)},
	{Name: "u2", Offset: 0x70, Width: Array(28, 0)},
	{Name: "hit_condition_idx", Offset: NoOffset, Width: Int(4), Role: Ref, Target: HitConditions},
	{Name: "cancel_idx", Offset: NoOffset, Width: Int(4), Role: Ref, Target: Cancels},
}

var t5drThrowExtraFields = []Field{
	{Name: "u1", Offset: 0x0, Width: Int(4)},
	{Name: "u2", Offset: 0x4, Width: Array(4, 2)},
}

var t5drThrowFields = []Field{
	{Name: "u1", Offset: 0x0, Width: Int(4)},
	{Name: "throwextra_idx", Offset: 0x4, Width: Int(4), Role: Ref, Target: ThrowExtras},
}

var t5drParryRelatedFields = []Field{
	{Name: "value", Offset: 0x0, Width: Int(4)},
}
