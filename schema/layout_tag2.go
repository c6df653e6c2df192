package schema

import "encoding/binary"

// tag2Layout describes the Tag Tournament 2 motbin
var tag2Layout = layout{
	header: Header{
		Slots: map[KindID]Slot{
			Requirements:        {Pointer: 0x148, Count: 0x14C},
			CancelExtradata:     {Pointer: 0x180, Count: 0x184},
			Cancels:             {Pointer: 0x170, Count: 0x174},
			GroupCancels:        {Pointer: 0x178, Count: 0x17C},
			PushbackExtras:      {Pointer: 0x168, Count: 0x16C},
			Pushbacks:           {Pointer: 0x160, Count: 0x164},
			ReactionList:        {Pointer: 0x140, Count: 0x144},
			ExtraMoveProperties: {Pointer: 0x188, Count: 0x18C},
			Voiceclips:          {Pointer: 0x1A8, Count: 0x1AC},
			HitConditions:       {Pointer: 0x150, Count: 0x154},
			Moves:               {Pointer: 0x1A0, Count: 0x1A4},
			InputExtradata:      {Pointer: 0x1B8, Count: 0x1BC},
			InputSequences:      {Pointer: 0x1B0, Count: 0x1B4},
			Projectiles:         {Pointer: 0x158, Count: 0x15C},
			ThrowExtras:         {Pointer: 0x1C8, Count: 0x1CC},
			Throws:              {Pointer: 0x1D0, Count: 0x1D4},
			ParryRelated:        {Pointer: 0x1C0, Count: 0x1C4},
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
		MotaStart:    0x1D8,
		Placeholders: []int{0x8, 0xC, 0x10, 0x14},
	},
	kinds: map[KindID]Kind{
		Requirements:        {Stride: 0x8, Fields: tag2RequirementFields},
		CancelExtradata:     {Stride: 0x4, Fields: tag2CancelExtradataFields, Scalar: true},
		Cancels:             {Stride: 0x20, Fields: tag2CancelFields},
		GroupCancels:        {Stride: 0x20, Fields: tag2CancelFields},
		PushbackExtras:      {Stride: 0x2, Fields: tag2PushbackExtraFields, Scalar: true},
		Pushbacks:           {Stride: 0xC, Fields: tag2PushbackFields},
		ReactionList:        {Stride: 0x50, Fields: tag2ReactionListFields},
		ExtraMoveProperties: {Stride: 0xC, Fields: tag2ExtraMovePropFields},
		Voiceclips:          {Stride: 0x4, Fields: tag2VoiceclipFields, Scalar: true},
		HitConditions:       {Stride: 0xC, Fields: tag2HitConditionFields},
		Moves:               {Stride: 0x70, Fields: tag2MoveFields},
		InputExtradata:      {Stride: 0x8, Fields: tag2InputExtradataFields},
		InputSequences:      {Stride: 0x8, Fields: tag2InputSequenceFields},
		Projectiles:         {Stride: 0x88, Fields: tag2ProjectileFields},
		ThrowExtras:         {Stride: 0xC, Fields: tag2ThrowExtraFields},
		Throws:              {Stride: 0x8, Fields: tag2ThrowFields},
		ParryRelated:        {Stride: 0x4, Fields: tag2ParryRelatedFields, Scalar: true},
	},
}

var tag2RequirementFields = []Field{
	{Name: "req", Offset: 0x0, Width: Int(4)},
	{Name: "param", Offset: 0x4, Width: Int(4)},
}

var tag2CancelExtradataFields = []Field{
	{Name: "value", Offset: 0x0, Width: Int(4)},
}

var tag2CancelFields = []Field{
	{Name: "command", Offset: 0x0, Width: Int(8)},
	{Name: "extradata_idx", Offset: 0xC, Width: Int(4), Role: Ref, Target: CancelExtradata},
	{Name: "requirement_idx", Offset: 0x8, Width: Int(4), Role: Ref, Target: Requirements},
	{Name: "frame_window_start", Offset: 0x10, Width: Int(4)},
	{Name: "frame_window_end", Offset: 0x14, Width: Int(4)},
	{Name: "starting_frame", Offset: 0x18, Width: Int(4)},
	{Name: "move_id", Offset: 0x1C, Width: Int(2)},
	{Name: "cancel_option", Offset: 0x1E, Width: Int(2)},
}

var tag2PushbackExtraFields = []Field{
	{Name: "value", Offset: 0x0, Width: Int(2)},
}

var tag2PushbackFields = []Field{
	{Name: "val1", Offset: 0x0, Width: Int(2)},
	{Name: "val2", Offset: 0x2, Width: Int(2)},
	{Name: "val3", Offset: 0x4, Width: Int(4)},
	{Name: "pushbackextra_idx", Offset: 0x8, Width: Int(4), Role: Ref, Target: PushbackExtras},
}

var tag2ReactionListFields = []Field{
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

var tag2ExtraMovePropFields = []Field{
	{Name: "id", Offset: 0x4, Width: Int(4)},
	{Name: "type", Offset: 0x0, Width: Int(4)},
	{Name: "value", Offset: 0x8, Width: Int(4)},
}

var tag2VoiceclipFields = []Field{
	{Name: "value", Offset: 0x0, Width: Int(4)},
}

var tag2HitConditionFields = []Field{
	{Name: "requirement_idx", Offset: 0x0, Width: Int(4), Role: Ref, Target: Requirements},
	{Name: "damage", Offset: 0x4, Width: Int(4)},
	{Name: "reaction_list_idx", Offset: 0x8, Width: Int(4), Role: Ref, Target: ReactionList},
}

var tag2MoveFields = []Field{
	{Name: "name", Offset: 0x0, Width: StringPtr()},
	{Name: "anim_name", Offset: 0x4, Width: StringPtr()},
	{Name: "anim_addr", Offset: 0x8, Width: Int(4), Role: AnimRef},
	{Name: "vuln", Offset: 0xC, Width: Int(4)},
	{Name: "hitlevel", Offset: 0x10, Width: Int(4)},
	{Name: "cancel_idx", Offset: 0x14, Width: Int(4), Role: Ref, Target: Cancels},
	{Name: "transition", Offset: 0x30, Width: Int(2)},
	{Name: "anim_max_len", Offset: 0x3C, Width: Int(4)},
	{Name: "first_active_frame", Offset: 0x64, Width: Int(4)},
	{Name: "last_active_frame", Offset: 0x68, Width: Int(4)},
	{Name: "hitbox_location", Offset: 0x60, Width: Int(4), Order: binary.LittleEndian},
	{Name: "hit_condition_idx", Offset: 0x38, Width: Int(4), Role: Ref, Target: HitConditions},
	{Name: "extra_properties_idx", Offset: 0x50, Width: Int(4), Role: Ref, Target: ExtraMoveProperties},
	{Name: "voiceclip_idx", Offset: 0x4C, Width: Int(4), Role: Ref, Target: Voiceclips},
	{Name: "u2", Offset: 0x1C, Width: Int(4)},
	{Name: "u3", Offset: 0x20, Width: Int(4)},
	{Name: "u4", Offset: 0x24, Width: Int(4)},
	{Name: "u6", Offset: 0x2C, Width: Int(4)},
	{Name: "u7", Offset: 0x32, Width: Int(2)},
	{Name: "u8", Offset: 0x36, Width: Int(2)},
	{Name: "u8_2", Offset: 0x34, Width: Int(2)},
	{Name: "u9", Offset: NoOffset, Width: Int(2)},
	{Name: "u10", Offset: 0x40, Width: Int(4)},
	{Name: "u11", Offset: 0x44, Width: Int(4)},
	{Name: "u12", Offset: 0x48, Width: Int(4)},
	{Name: "u15", Offset: 0x5C, Width: Int(4)},
	{Name: "u16", Offset: 0x6C, Width: Int(2)},
	{Name: "u17", Offset: 0x6E, Width: Int(2)},
	{Name: "u18", Offset: NoOffset, Width: Int(4)},
}

var tag2InputExtradataFields = []Field{
	{Name: "u1", Offset: 0x0, Width: Int(4)},
	{Name: "u2", Offset: 0x4, Width: Int(4)},
}

var tag2InputSequenceFields = []Field{
	{Name: "u1", Offset: 0x1, Width: Int(1)},
	{Name: "u2", Offset: 0x2, Width: Int(2)},
	{Name: "u3", Offset: 0x0, Width: Int(1)},
	{Name: "extradata_idx", Offset: 0x4, Width: Int(4), Role: Ref, Target: InputExtradata},
}

var tag2ProjectileFields = []Field{
	{Name: "u1", Offset: 0x0, Width: Array(48, 0)},
	{Name: "u2", Offset: 0x70, Width: Array(28, 0)},
	{Name: "hit_condition_idx", Offset: NoOffset, Width: Int(4), Role: Ref, Target: HitConditions},
	{Name: "cancel_idx", Offset: NoOffset, Width: Int(4), Role: Ref, Target: Cancels},
}

var tag2ThrowExtraFields = []Field{
	{Name: "u1", Offset: 0x0, Width: Int(4)},
	{Name: "u2", Offset: 0x4, Width: Array(4, 2)},
}

var tag2ThrowFields = []Field{
	{Name: "u1", Offset: 0x0, Width: Int(4)},
	{Name: "throwextra_idx", Offset: 0x4, Width: Int(4), Role: Ref, Target: ThrowExtras},
}

var tag2ParryRelatedFields = []Field{
	{Name: "value", Offset: 0x0, Width: Int(4)},
}
