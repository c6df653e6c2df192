package schema

// t4Layout describes the Tekken 4 motbin
var t4Layout = layout{
	header: Header{
		Slots: map[KindID]Slot{
			Requirements:        {Pointer: 0xE4, Count: 0xE8},
			Cancels:             {Pointer: 0x104, Count: 0x108},
			GroupCancels:        {Pointer: 0x10C, Count: 0x110},
			PushbackExtras:      {Pointer: 0xFC, Count: 0x100},
			Pushbacks:           {Pointer: 0xF4, Count: 0xF8},
			ReactionList:        {Pointer: 0xDC, Count: 0xE0},
			ExtraMoveProperties: {Pointer: 0x114, Count: 0x118},
			Voiceclips:          {Pointer: 0x124, Count: 0x128},
			HitConditions:       {Pointer: 0xEC, Count: 0xF0},
			Moves:               {Pointer: 0x11C, Count: 0x120},
		},
		Strings: []Field{
			{Name: "character_name", Offset: 0x4, Width: InvalidStringPtr()},
			{Name: "creator_name", Offset: 0x8, Width: InvalidStringPtr()},
			{Name: "date", Offset: 0xC, Width: StringPtr()},
			{Name: "fulldate", Offset: 0x10, Width: StringPtr()},
		},
		Aliases: []Field{
			{Name: "aliases", Offset: 0x14, Width: Array(32, 4)},
			{Name: "aliases2", Offset: 0x98, Width: Array(37, 2)},
		},
		MotaStart:    NoOffset,
		Placeholders: []int{0x4, 0x8, 0xC, 0x10},
	},
	kinds: map[KindID]Kind{
		Requirements:        {Stride: 0x4, Fields: t4RequirementFields},
		CancelExtradata:     {Stride: 0x4, Fields: t4CancelExtradataFields, Scalar: true},
		Cancels:             {Stride: 0x14, Fields: t4CancelFields},
		GroupCancels:        {Stride: 0x14, Fields: t4CancelFields},
		PushbackExtras:      {Stride: 0x2, Fields: t4PushbackExtraFields, Scalar: true},
		Pushbacks:           {Stride: 0xC, Fields: t4PushbackFields},
		ReactionList:        {Stride: 0x50, Fields: t4ReactionListFields},
		ExtraMoveProperties: {Stride: 0x8, Fields: t4ExtraMovePropFields},
		Voiceclips:          {Stride: 0x4, Fields: t4VoiceclipFields, Scalar: true},
		HitConditions:       {Stride: 0xC, Fields: t4HitConditionFields},
		Moves:               {Stride: 0x34, Fields: t4MoveFields, Shared: [][2]string{{"first_active_frame", "last_active_frame"}}},
		InputExtradata:      {Stride: 0x4, Fields: t4InputExtradataFields},
		InputSequences:      {Stride: 0x8, Fields: t4InputSequenceFields},
		Projectiles:         {Stride: 0x88, Fields: t4ProjectileFields},
		ThrowExtras:         {Stride: 0xC, Fields: t4ThrowExtraFields},
		Throws:              {Stride: 0x8, Fields: t4ThrowFields},
		ParryRelated:        {Stride: 0x4, Fields: t4ParryRelatedFields, Scalar: true},
	},
}

var t4RequirementFields = []Field{
	{Name: "req", Offset: 0x0, Width: Int(2)},
	{Name: "param", Offset: 0x2, Width: Int(2)},
}

var t4CancelExtradataFields = []Field{
	{Name: "value", Offset: 0x0, Width: Int(4)},
}

var t4CancelFields = []Field{
	{Name: "command", Offset: 0x0, Width: Int(4)},
	{Name: "extradata_idx", Offset: 0xC, Width: Int(4), Role: Ref, Target: CancelExtradata},
	{Name: "requirement_idx", Offset: 0x4, Width: Int(4), Role: Ref, Target: Requirements},
	{Name: "frame_window_start", Offset: 0x10, Width: Int(2)},
	{Name: "frame_window_end", Offset: 0x12, Width: Int(2)},
	{Name: "starting_frame", Offset: NoOffset, Width: Int(2)},
	{Name: "move_id", Offset: 0x8, Width: Int(2)},
	{Name: "cancel_option", Offset: NoOffset, Width: Int(2)},
}

var t4PushbackExtraFields = []Field{
	{Name: "value", Offset: 0x0, Width: Int(2)},
}

var t4PushbackFields = []Field{
	{Name: "val1", Offset: 0x0, Width: Int(2)},
	{Name: "val2", Offset: 0x2, Width: Int(2)},
	{Name: "val3", Offset: 0x4, Width: Int(2)},
	{Name: "pushbackextra_idx", Offset: 0x8, Width: Int(4), Role: Ref, Target: PushbackExtras},
}

var t4ReactionListFields = []Field{
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

var t4ExtraMovePropFields = []Field{
	{Name: "id", Offset: 0x2, Width: Int(2)},
	{Name: "type", Offset: 0x0, Width: Int(2)},
	{Name: "value", Offset: 0x4, Width: Int(4)},
}

var t4VoiceclipFields = []Field{
	{Name: "value", Offset: 0x0, Width: Int(4)},
}

var t4HitConditionFields = []Field{
	{Name: "requirement_idx", Offset: 0x0, Width: Int(4), Role: Ref, Target: Requirements},
	{Name: "damage", Offset: 0x4, Width: Int(2)},
	{Name: "reaction_list_idx", Offset: 0x8, Width: Int(4), Role: Ref, Target: ReactionList},
}

var t4MoveFields = []Field{
	{Name: "name", Offset: NoOffset, Width: StringPtr()},
	{Name: "anim_name", Offset: NoOffset, Width: StringPtr()},
	{Name: "anim_addr", Offset: 0x0, Width: Int(4), Role: AnimRef},
	{Name: "vuln", Offset: 0x4, Width: Int(4)},
	{Name: "hitlevel", Offset: 0x8, Width: Int(4)},
	{Name: "cancel_idx", Offset: 0xC, Width: Int(4), Role: Ref, Target: Cancels},
	{Name: "transition", Offset: 0x10, Width: Int(2)},
	{Name: "anim_max_len", Offset: 0x1C, Width: Int(2)},
	{Name: "first_active_frame", Offset: 0x30, Width: Int(2)},
	{Name: "last_active_frame", Offset: 0x31, Width: Int(2)},
	{Name: "hit_condition_idx", Offset: 0x18, Width: Int(4), Role: Ref, Target: HitConditions},
	{Name: "voiceclip_idx", Offset: 0x20, Width: Int(4), Role: Ref, Target: Voiceclips},
	{Name: "extra_properties_idx", Offset: 0x24, Width: Int(4), Role: Ref, Target: ExtraMoveProperties},
	{Name: "hitbox_location", Offset: 0x28, Width: Int(4)},
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
	{Name: "u15", Offset: NoOffset, Width: Int(4)},
	{Name: "u16", Offset: NoOffset, Width: Int(2)},
	{Name: "u17", Offset: NoOffset, Width: Int(2)},
	{Name: "u18", Offset: NoOffset, Width: Int(4)},
}

var t4InputExtradataFields = []Field{
	{Name: "u1", Offset: 0x0, Width: Int(2)},
	{Name: "u2", Offset: 0x2, Width: Int(2)},
}

var t4InputSequenceFields = []Field{
	{Name: "u1", Offset: 0x1, Width: Int(1)},
	{Name: "u2", Offset: 0x2, Width: Int(2)},
	{Name: "u3", Offset: 0x0, Width: Int(1)},
	{Name: "extradata_idx", Offset: 0x4, Width: Int(4), Role: Ref, Target: InputExtradata},
}

var t4ProjectileFields = []Field{
	{Name: "u1", Offset: 0x0, Width: Array(48, 0)},
	{Name: "u2", Offset: 0x70, Width: Array(28, 0)},
	{Name: "hit_condition_idx", Offset: NoOffset, Width: Int(4), Role: Ref, Target: HitConditions},
	{Name: "cancel_idx", Offset: NoOffset, Width: Int(4), Role: Ref, Target: Cancels},
}

var t4ThrowExtraFields = []Field{
	{Name: "u1", Offset: 0x0, Width: Int(4)},
	{Name: "u2", Offset: 0x4, Width: Array(4, 2)},
}

var t4ThrowFields = []Field{
	{Name: "u1", Offset: 0x0, Width: Int(4)},
	{Name: "throwextra_idx", Offset: 0x4, Width: Int(4), Role: Ref, Target: ThrowExtras},
}

var t4ParryRelatedFields = []Field{
	{Name: "value", Offset: 0x0, Width: Int(4)},
}
