package schema

import "encoding/binary"

// t6Layout describes the Tekken 6 motbin
var t6Layout = layout{
	header: Header{
		Slots: map[KindID]Slot{
			Requirements:        {Pointer: 0x17C, Count: 0x180},
			CancelExtradata:     {Pointer: 0x1AC, Count: 0x1B0},
			Cancels:             {Pointer: 0x19C, Count: 0x1A0},
			GroupCancels:        {Pointer: 0x1A4, Count: 0x1A8},
			PushbackExtras:      {Pointer: 0x194, Count: 0x198},
			Pushbacks:           {Pointer: 0x18C, Count: 0x190},
			ReactionList:        {Pointer: 0x174, Count: 0x178},
			ExtraMoveProperties: {Pointer: 0x1B4, Count: 0x1B8},
			Voiceclips:          {Pointer: 0x1D4, Count: 0x1D8},
			HitConditions:       {Pointer: 0x184, Count: 0x188},
			Moves:               {Pointer: 0x1CC, Count: 0x1D0},
			ThrowExtras:         {Pointer: 0x22C, Count: 0x230},
		},
		Strings: []Field{
			{Name: "character_name", Offset: 0x8, Width: StringPtr()},
			{Name: "creator_name", Offset: 0xC, Width: StringPtr()},
			{Name: "date", Offset: 0x10, Width: StringPtr()},
			{Name: "fulldate", Offset: 0x14, Width: StringPtr()},
		},
		Aliases: []Field{
			{Name: "aliases", Offset: 0x18, Width: Array(148, 2)},
			{Name: "aliases2", Offset: 0xF8, Width: Array(36, 2)},
		},
		MotaStart:    0x234,
		Placeholders: []int{0x8, 0xC, 0x10, 0x14},
	},
	kinds: map[KindID]Kind{
		Requirements:        {Stride: 0x8, Fields: t6RequirementFields},
		CancelExtradata:     {Stride: 0x4, Fields: t6CancelExtradataFields, Scalar: true},
		Cancels:             {Stride: 0x20, Fields: t6CancelFields},
		GroupCancels:        {Stride: 0x20, Fields: t6CancelFields},
		PushbackExtras:      {Stride: 0x2, Fields: t6PushbackExtraFields, Scalar: true},
		Pushbacks:           {Stride: 0xC, Fields: t6PushbackFields},
		ReactionList:        {Stride: 0x50, Fields: t6ReactionListFields},
		ExtraMoveProperties: {Stride: 0xC, Fields: t6ExtraMovePropFields},
		Voiceclips:          {Stride: 0x4, Fields: t6VoiceclipFields, Scalar: true},
		HitConditions:       {Stride: 0xC, Fields: t6HitConditionFields},
		Moves:               {Stride: 0x58, Fields: t6MoveFields},
		InputExtradata:      {Stride: 0x8, Fields: t6InputExtradataFields},
		InputSequences:      {Stride: 0x8, Fields: t6InputSequenceFields},
		Projectiles:         {Stride: 0x88, Fields: t6ProjectileFields},
		ThrowExtras:         {Stride: 0xC, Fields: t6ThrowExtraFields},
		Throws:              {Stride: 0x8, Fields: t6ThrowFields},
		ParryRelated:        {Stride: 0x4, Fields: t6ParryRelatedFields, Scalar: true},
	},
}

var t6RequirementFields = []Field{
	{Name: "req", Offset: 0x0, Width: Int(4)},
	{Name: "param", Offset: 0x4, Width: Int(4)},
}

var t6CancelExtradataFields = []Field{
	{Name: "value", Offset: 0x0, Width: Int(4)},
}

var t6CancelFields = []Field{
	{Name: "command", Offset: 0x0, Width: Int(8)},
	{Name: "extradata_idx", Offset: 0xC, Width: Int(4), Role: Ref, Target: CancelExtradata},
	{Name: "requirement_idx", Offset: 0x8, Width: Int(4), Role: Ref, Target: Requirements},
	{Name: "frame_window_start", Offset: 0x10, Width: Int(4)},
	{Name: "frame_window_end", Offset: 0x14, Width: Int(4)},
	{Name: "starting_frame", Offset: 0x18, Width: Int(4)},
	{Name: "move_id", Offset: 0x1C, Width: Int(2)},
	{Name: "cancel_option", Offset: 0x1E, Width: Int(2)},
}

var t6PushbackExtraFields = []Field{
	{Name: "value", Offset: 0x0, Width: Int(2)},
}

var t6PushbackFields = []Field{
	{Name: "val1", Offset: 0x0, Width: Int(2)},
	{Name: "val2", Offset: 0x2, Width: Int(2)},
	{Name: "val3", Offset: 0x4, Width: Int(4)},
	{Name: "pushbackextra_idx", Offset: 0x8, Width: Int(4), Role: Ref, Target: PushbackExtras},
}

var t6ReactionListFields = []Field{
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

var t6ExtraMovePropFields = []Field{
	{Name: "id", Offset: 0x4, Width: Int(4)},
	{Name: "type", Offset: 0x0, Width: Int(4)},
	{Name: "value", Offset: 0x8, Width: Int(4)},
}

var t6VoiceclipFields = []Field{
	{Name: "value", Offset: 0x0, Width: Int(4)},
}

var t6HitConditionFields = []Field{
	{Name: "requirement_idx", Offset: 0x0, Width: Int(4), Role: Ref, Target: Requirements},
	{Name: "damage", Offset: 0x4, Width: Int(4)},
	{Name: "reaction_list_idx", Offset: 0x8, Width: Int(4), Role: Ref, Target: ReactionList},
}

var t6MoveFields = []Field{
	{Name: "name", Offset: NoOffset, Width: StringPtr()},
	{Name: "anim_name", Offset: NoOffset, Width: StringPtr()},
	{Name: "anim_addr", Offset: 0x8, Width: Int(4), Role: AnimRef},
	{Name: "vuln", Offset: 0xC, Width: Int(4)},
	{Name: "hitlevel", Offset: 0x10, Width: Int(4)},
	{Name: "cancel_idx", Offset: 0x14, Width: Int(4), Role: Ref, Target: Cancels},
	{Name: "transition", Offset: 0x18, Width: Int(2)},
	{Name: "anim_max_len", Offset: 0x24, Width: Int(4)},
	{Name: "first_active_frame", Offset: 0x4C, Width: Int(4)},
	{Name: "last_active_frame", Offset: 0x50, Width: Int(4)},
	{Name: "hit_condition_idx", Offset: 0x20, Width: Int(4), Role: Ref, Target: HitConditions},
	{Name: "voiceclip_idx", Offset: 0x34, Width: Int(4), Role: Ref, Target: Voiceclips},
	{Name: "extra_properties_idx", Offset: 0x38, Width: Int(4), Role: Ref, Target: ExtraMoveProperties},
	{Name: "hitbox_location", Offset: 0x48, Width: Int(4), Order: binary.LittleEndian},
	{Name: "u2", Offset: NoOffset, Width: Int(4)},
	{Name: "u3", Offset: NoOffset, Width: Int(4)},
	{Name: "u4", Offset: NoOffset, Width: Int(4)},
	{Name: "u6", Offset: NoOffset, Width: Int(4)},
	{Name: "u7", Offset: NoOffset, Width: Int(2)},
	{Name: "u8", Offset: NoOffset, Width: Int(2)},
	{Name: "u8_2", Offset: NoOffset, Width: Int(2)},
	{Name: "u9", Offset: NoOffset, Width: Int(2)},
	{Name: "u10", Offset: 0x28, Width: Int(4)},
	{Name: "u11", Offset: 0x2C, Width: Int(4)},
	{Name: "u12", Offset: 0x30, Width: Int(4)},
	{Name: "u15", Offset: 0x44, Width: Int(4)},
	{Name: "u16", Offset: 0x54, Width: Int(2)},
	{Name: "u17", Offset: 0x56, Width: Int(2)},
	{Name: "u18", Offset: NoOffset, Width: Int(4)},
}

var t6InputExtradataFields = []Field{
	{Name: "u1", Offset: 0x0, Width: Int(4)},
	{Name: "u2", Offset: 0x4, Width: Int(4)},
}

var t6InputSequenceFields = []Field{
	{Name: "u1", Offset: 0x1, Width: Int(1)},
	{Name: "u2", Offset: 0x2, Width: Int(2)},
	{Name: "u3", Offset: 0x0, Width: Int(1)},
	{Name: "extradata_idx", Offset: 0x4, Width: Int(4), Role: Ref, Target: InputExtradata},
}

var t6ProjectileFields = []Field{
	{Name: "u1", Offset: 0x0, Width: Array(48, 0)},
	{Name: "u2", Offset: 0x70, Width: Array(28, 0)},
	{Name: "hit_condition_idx", Offset: NoOffset, Width: Int(4), Role: Ref, Target: HitConditions},
	{Name: "cancel_idx", Offset: NoOffset, Width: Int(4), Role: Ref, Target: Cancels},
}

var t6ThrowExtraFields = []Field{
	{Name: "u1", Offset: 0x0, Width: Int(4)},
	{Name: "u2", Offset: 0x4, Width: Array(4, 2)},
}

var t6ThrowFields = []Field{
	{Name: "u1", Offset: NoOffset, Width: Int(4)},
	{Name: "throwextra_idx", Offset: NoOffset, Width: Int(4), Role: Ref, Target: ThrowExtras},
}

var t6ParryRelatedFields = []Field{
	{Name: "value", Offset: NoOffset, Width: Int(4)},
}
