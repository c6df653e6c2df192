package schema

// t7Layout describes the Tekken 7 motbin
var t7Layout = layout{
	header: Header{
		Slots: map[KindID]Slot{
			Requirements:        {Pointer: 0x160, Count: 0x168},
			CancelExtradata:     {Pointer: 0x1D0, Count: 0x1D8},
			Cancels:             {Pointer: 0x1B0, Count: 0x1B8},
			GroupCancels:        {Pointer: 0x1C0, Count: 0x1C8},
			PushbackExtras:      {Pointer: 0x1A0, Count: 0x1A8},
			Pushbacks:           {Pointer: 0x190, Count: 0x198},
			ReactionList:        {Pointer: 0x150, Count: 0x158},
			ExtraMoveProperties: {Pointer: 0x1E0, Count: 0x1E8},
			Voiceclips:          {Pointer: 0x220, Count: 0x228},
			HitConditions:       {Pointer: 0x170, Count: 0x178},
			Moves:               {Pointer: 0x210, Count: 0x218},
			InputExtradata:      {Pointer: 0x240, Count: 0x248},
			InputSequences:      {Pointer: 0x230, Count: 0x238},
			Projectiles:         {Pointer: 0x180, Count: 0x188},
			ThrowExtras:         {Pointer: 0x260, Count: 0x268},
			Throws:              {Pointer: 0x270, Count: 0x278},
			ParryRelated:        {Pointer: 0x250, Count: 0x258},
		},
		Strings: []Field{
			{Name: "character_name", Offset: 0x8, Width: StringPtr()},
			{Name: "creator_name", Offset: 0x10, Width: StringPtr()},
			{Name: "date", Offset: 0x18, Width: StringPtr()},
			{Name: "fulldate", Offset: 0x20, Width: StringPtr()},
		},
		Aliases: []Field{
			{Name: "aliases", Offset: 0x28, Width: Array(148, 2)},
			{Name: "aliases2", Offset: 0x108, Width: Array(36, 2)},
		},
		MotaStart:    0x280,
		Placeholders: []int{0x8, 0x10, 0x18, 0x20},
	},
	kinds: map[KindID]Kind{
		Requirements:        {Stride: 0x8, Fields: t7RequirementFields},
		CancelExtradata:     {Stride: 0x4, Fields: t7CancelExtradataFields, Scalar: true},
		Cancels:             {Stride: 0x28, Fields: t7CancelFields},
		GroupCancels:        {Stride: 0x28, Fields: t7CancelFields},
		PushbackExtras:      {Stride: 0x2, Fields: t7PushbackExtraFields, Scalar: true},
		Pushbacks:           {Stride: 0x10, Fields: t7PushbackFields},
		ReactionList:        {Stride: 0x70, Fields: t7ReactionListFields},
		ExtraMoveProperties: {Stride: 0xC, Fields: t7ExtraMovePropFields},
		Voiceclips:          {Stride: 0x4, Fields: t7VoiceclipFields, Scalar: true},
		HitConditions:       {Stride: 0x18, Fields: t7HitConditionFields},
		Moves:               {Stride: 0xB0, Fields: t7MoveFields},
		InputExtradata:      {Stride: 0x8, Fields: t7InputExtradataFields},
		InputSequences:      {Stride: 0x10, Fields: t7InputSequenceFields},
		Projectiles:         {Stride: 0xA8, Fields: t7ProjectileFields},
		ThrowExtras:         {Stride: 0xC, Fields: t7ThrowExtraFields},
		Throws:              {Stride: 0x10, Fields: t7ThrowFields},
		ParryRelated:        {Stride: 0x4, Fields: t7ParryRelatedFields, Scalar: true},
	},
}

var t7RequirementFields = []Field{
	{Name: "req", Offset: 0x0, Width: Int(4)},
	{Name: "param", Offset: 0x4, Width: Int(4)},
}

var t7CancelExtradataFields = []Field{
	{Name: "value", Offset: 0x0, Width: Int(4)},
}

var t7CancelFields = []Field{
	{Name: "command", Offset: 0x0, Width: Int(8)},
	{Name: "extradata_idx", Offset: 0x10, Width: Int(8), Role: Ref, Target: CancelExtradata},
	{Name: "requirement_idx", Offset: 0x8, Width: Int(8), Role: Ref, Target: Requirements},
	{Name: "frame_window_start", Offset: 0x18, Width: Int(4)},
	{Name: "frame_window_end", Offset: 0x1C, Width: Int(4)},
	{Name: "starting_frame", Offset: 0x20, Width: Int(4)},
	{Name: "move_id", Offset: 0x24, Width: Int(2)},
	{Name: "cancel_option", Offset: 0x26, Width: Int(2)},
}

var t7PushbackExtraFields = []Field{
	{Name: "value", Offset: 0x0, Width: Int(2)},
}

var t7PushbackFields = []Field{
	{Name: "val1", Offset: 0x0, Width: Int(2)},
	{Name: "val2", Offset: 0x2, Width: Int(2)},
	{Name: "val3", Offset: 0x4, Width: Int(2)},
	{Name: "pushbackextra_idx", Offset: 0x8, Width: Int(8), Role: Ref, Target: PushbackExtras},
}

var t7ReactionListFields = []Field{
	{Name: "pushback_indexes", Offset: 0x0, Width: Array(7, 8), Role: RefList, Target: Pushbacks},
	{Name: "u1list", Offset: 0x38, Width: Array(6, 2)},
	{Name: "vertical_pushback", Offset: 0x4C, Width: Int(2)},
	{Name: "standing", Offset: 0x50, Width: Int(2)},
	{Name: "ch", Offset: 0x54, Width: Int(2)},
	{Name: "crouch", Offset: 0x52, Width: Int(2)},
	{Name: "crouch_ch", Offset: 0x56, Width: Int(2)},
	{Name: "left_side", Offset: 0x58, Width: Int(2)},
	{Name: "left_side_crouch", Offset: 0x5A, Width: Int(2)},
	{Name: "right_side", Offset: 0x5C, Width: Int(2)},
	{Name: "right_side_crouch", Offset: 0x5E, Width: Int(2)},
	{Name: "back", Offset: 0x60, Width: Int(2)},
	{Name: "back_crouch", Offset: 0x62, Width: Int(2)},
	{Name: "block", Offset: 0x64, Width: Int(2)},
	{Name: "crouch_block", Offset: 0x66, Width: Int(2)},
	{Name: "wallslump", Offset: 0x68, Width: Int(2)},
	{Name: "downed", Offset: 0x6A, Width: Int(2)},
}

var t7ExtraMovePropFields = []Field{
	{Name: "id", Offset: 0x4, Width: Int(4)},
	{Name: "type", Offset: 0x0, Width: Int(4)},
	{Name: "value", Offset: 0x8, Width: Int(4)},
}

var t7VoiceclipFields = []Field{
	{Name: "value", Offset: 0x0, Width: Int(4)},
}

var t7HitConditionFields = []Field{
	{Name: "requirement_idx", Offset: 0x0, Width: Int(8), Role: Ref, Target: Requirements},
	{Name: "damage", Offset: 0x8, Width: Int(4)},
	{Name: "reaction_list_idx", Offset: 0x10, Width: Int(8), Role: Ref, Target: ReactionList},
}

var t7MoveFields = []Field{
	{Name: "name", Offset: 0x0, Width: StringPtr()},
	{Name: "anim_name", Offset: 0x8, Width: StringPtr()},
	{Name: "anim_addr", Offset: 0x10, Width: Int(8), Role: AnimRef},
	{Name: "vuln", Offset: 0x18, Width: Int(4)},
	{Name: "hitlevel", Offset: 0x1C, Width: Int(4)},
	{Name: "cancel_idx", Offset: 0x20, Width: Int(8), Role: Ref, Target: Cancels},
	{Name: "transition", Offset: 0x54, Width: Int(2)},
	{Name: "anim_max_len", Offset: 0x68, Width: Int(4)},
	{Name: "first_active_frame", Offset: 0xA0, Width: Int(4)},
	{Name: "last_active_frame", Offset: 0xA4, Width: Int(4)},
	{Name: "hitbox_location", Offset: 0x9C, Width: Int(4)},
	{Name: "hit_condition_idx", Offset: 0x60, Width: Int(8), Role: Ref, Target: HitConditions},
	{Name: "extra_properties_idx", Offset: 0x80, Width: Int(8), Role: Ref, Target: ExtraMoveProperties},
	{Name: "voiceclip_idx", Offset: 0x78, Width: Int(8), Role: Ref, Target: Voiceclips},
	{Name: "u2", Offset: 0x30, Width: Int(8)},
	{Name: "u3", Offset: 0x38, Width: Int(8)},
	{Name: "u4", Offset: 0x40, Width: Int(8)},
	{Name: "u6", Offset: 0x50, Width: Int(4)},
	{Name: "u7", Offset: 0x56, Width: Int(2)},
	{Name: "u8", Offset: 0x58, Width: Int(2)},
	{Name: "u8_2", Offset: 0x5A, Width: Int(2)},
	{Name: "u9", Offset: 0x5C, Width: Int(2)},
	{Name: "u10", Offset: 0x6C, Width: Int(4)},
	{Name: "u11", Offset: 0x70, Width: Int(4)},
	{Name: "u12", Offset: 0x74, Width: Int(4)},
	{Name: "u15", Offset: 0x98, Width: Int(4)},
	{Name: "u16", Offset: 0xA8, Width: Int(2)},
	{Name: "u17", Offset: 0xAA, Width: Int(2)},
	{Name: "u18", Offset: 0xAC, Width: Int(4)},
}

var t7InputExtradataFields = []Field{
	{Name: "u1", Offset: 0x0, Width: Int(4)},
	{Name: "u2", Offset: 0x4, Width: Int(4)},
}

var t7InputSequenceFields = []Field{
	{Name: "u1", Offset: 0x0, Width: Int(2)},
	{Name: "u2", Offset: 0x2, Width: Int(2)},
	{Name: "u3", Offset: 0x4, Width: Int(4)},
	{Name: "extradata_idx", Offset: 0x8, Width: Int(8), Role: Ref, Target: InputExtradata},
}

var t7ProjectileFields = []Field{
	{Name: "u1", Offset: 0x0, Width: Array(48, 2)},
	{Name: "u2", Offset: 0x70, Width: Array(28, 2)},
	{Name: "hit_condition_idx", Offset: 0x60, Width: Int(8), Role: Ref, Target: HitConditions},
	{Name: "cancel_idx", Offset: 0x68, Width: Int(8), Role: Ref, Target: Cancels},
}

var t7ThrowExtraFields = []Field{
	{Name: "u1", Offset: 0x0, Width: Int(4)},
	{Name: "u2", Offset: 0x4, Width: Array(4, 2)},
}

var t7ThrowFields = []Field{
	{Name: "u1", Offset: 0x0, Width: Int(8)},
	{Name: "throwextra_idx", Offset: 0x8, Width: Int(8), Role: Ref, Target: ThrowExtras},
}

var t7ParryRelatedFields = []Field{
	{Name: "value", Offset: 0x0, Width: Int(4)},
}
