package schema

// t8Layout describes the Tekken 8 motbin
var t8Layout = layout{
	header: Header{
		Slots: map[KindID]Slot{
			Requirements:        {Pointer: 0x180, Count: 0x188},
			CancelExtradata:     {Pointer: 0x1F0, Count: 0x1F8},
			Cancels:             {Pointer: 0x1D0, Count: 0x1D8},
			GroupCancels:        {Pointer: 0x1E0, Count: 0x1E8},
			PushbackExtras:      {Pointer: 0x1C0, Count: 0x1C8},
			Pushbacks:           {Pointer: 0x1B0, Count: 0x1B8},
			ReactionList:        {Pointer: 0x168, Count: 0x178},
			ExtraMoveProperties: {Pointer: 0x200, Count: 0x208},
			MoveStartProps:      {Pointer: 0x210, Count: 0x218},
			MoveEndProps:        {Pointer: 0x220, Count: 0x228},
			Voiceclips:          {Pointer: 0x240, Count: 0x248},
			HitConditions:       {Pointer: 0x190, Count: 0x198},
			Moves:               {Pointer: 0x230, Count: 0x238},
			InputExtradata:      {Pointer: 0x260, Count: 0x268},
			InputSequences:      {Pointer: 0x250, Count: 0x258},
			Projectiles:         {Pointer: 0x1A0, Count: 0x1A8},
			ThrowExtras:         {Pointer: 0x280, Count: 0x288},
			Throws:              {Pointer: 0x290, Count: 0x298},
			ParryRelated:        {Pointer: 0x270, Count: 0x278},
			Dialogues:           {Pointer: 0x2A0, Count: 0x2A8},
		},
		Fields: []Field{
			{Name: "_0x4", Offset: 0x4, Width: Int(4)},
		},
		Aliases: []Field{
			{Name: "original_aliases", Offset: 0x30, Width: Array(60, 2)},
			{Name: "current_aliases", Offset: 0xA8, Width: Array(60, 2)},
			{Name: "unknown_aliases", Offset: 0x120, Width: Array(36, 2)},
		},
		MotaStart:    NoOffset,
		Placeholders: []int{0x10, 0x18, 0x20, 0x28},
		Constants:    []Constant{{Offset: 0x0, Width: 4, Value: 0x10000}, {Offset: 0x8, Width: 4, Value: 0x4B4554}},
	},
	kinds: map[KindID]Kind{
		Requirements:        {Stride: 0x14, Fields: t8RequirementFields},
		CancelExtradata:     {Stride: 0x4, Fields: t8CancelExtradataFields, Scalar: true},
		Cancels:             {Stride: 0x28, Fields: t8CancelFields},
		GroupCancels:        {Stride: 0x28, Fields: t8CancelFields},
		PushbackExtras:      {Stride: 0x2, Fields: t8PushbackExtraFields, Scalar: true},
		Pushbacks:           {Stride: 0x10, Fields: t8PushbackFields},
		ReactionList:        {Stride: 0x70, Fields: t8ReactionListFields, Shared: [][2]string{{"vertical_pushback", "downed_rotation"}}},
		ExtraMoveProperties: {Stride: 0x28, Fields: t8ExtraMovePropFields},
		MoveStartProps:      {Stride: 0x20, Fields: t8OtherMovePropFields},
		MoveEndProps:        {Stride: 0x20, Fields: t8OtherMovePropFields},
		Voiceclips:          {Stride: 0xC, Fields: t8VoiceclipFields},
		HitConditions:       {Stride: 0x18, Fields: t8HitConditionFields},
		Moves:               {Stride: 0x448, Fields: t8MoveFields},
		InputExtradata:      {Stride: 0x8, Fields: t8InputExtradataFields},
		InputSequences:      {Stride: 0x10, Fields: t8InputSequenceFields},
		Projectiles:         {Stride: 0xE0, Fields: t8ProjectileFields},
		ThrowExtras:         {Stride: 0xC, Fields: t8ThrowExtraFields},
		Throws:              {Stride: 0x10, Fields: t8ThrowFields},
		ParryRelated:        {Stride: 0x4, Fields: t8ParryRelatedFields, Scalar: true},
		Dialogues:           {Stride: 0x18, Fields: t8DialogueFields},
	},
}

var t8RequirementFields = []Field{
	{Name: "req", Offset: 0x0, Width: Int(4)},
	{Name: "param", Offset: 0x4, Width: Int(4)},
	{Name: "param2", Offset: 0x8, Width: Int(4)},
	{Name: "param3", Offset: 0xC, Width: Int(4)},
	{Name: "param4", Offset: 0x10, Width: Int(4)},
}

var t8CancelExtradataFields = []Field{
	{Name: "value", Offset: 0x0, Width: Int(4)},
}

var t8CancelFields = []Field{
	{Name: "command", Offset: 0x0, Width: Int(8)},
	{Name: "extradata_idx", Offset: 0x10, Width: Int(8), Role: Ref, Target: CancelExtradata},
	{Name: "requirement_idx", Offset: 0x8, Width: Int(8), Role: Ref, Target: Requirements},
	{Name: "frame_window_start", Offset: 0x18, Width: Int(4)},
	{Name: "frame_window_end", Offset: 0x1C, Width: Int(4)},
	{Name: "starting_frame", Offset: 0x20, Width: Int(4)},
	{Name: "move_id", Offset: 0x24, Width: Int(2)},
	{Name: "cancel_option", Offset: 0x26, Width: Int(2)},
}

var t8PushbackExtraFields = []Field{
	{Name: "value", Offset: 0x0, Width: Int(2)},
}

var t8PushbackFields = []Field{
	{Name: "val1", Offset: 0x0, Width: Int(2)},
	{Name: "val2", Offset: 0x2, Width: Int(2)},
	{Name: "val3", Offset: 0x4, Width: Int(4)},
	{Name: "pushbackextra_idx", Offset: 0x8, Width: Int(8), Role: Ref, Target: PushbackExtras},
}

var t8ReactionListFields = []Field{
	{Name: "pushback_indexes", Offset: 0x0, Width: Array(7, 8), Role: RefList, Target: Pushbacks},
	{Name: "front_direction", Offset: 0x38, Width: Int(2)},
	{Name: "back_direction", Offset: 0x3A, Width: Int(2)},
	{Name: "left_side_direction", Offset: 0x3C, Width: Int(2)},
	{Name: "right_side_direction", Offset: 0x3E, Width: Int(2)},
	{Name: "front_counterhit_direction", Offset: 0x40, Width: Int(2)},
	{Name: "downed_direction", Offset: 0x42, Width: Int(2)},
	{Name: "front_rotation", Offset: 0x44, Width: Int(2)},
	{Name: "back_rotation", Offset: 0x46, Width: Int(2)},
	{Name: "left_side_rotation", Offset: 0x48, Width: Int(2)},
	{Name: "right_side_rotation", Offset: 0x4A, Width: Int(2)},
	{Name: "vertical_pushback", Offset: 0x4C, Width: Int(4)},
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
	{Name: "downed_rotation", Offset: 0x4E, Width: Int(2)},
}

var t8ExtraMovePropFields = []Field{
	{Name: "id", Offset: 0x10, Width: Int(4)},
	{Name: "type", Offset: 0x0, Width: Int(4)},
	{Name: "value", Offset: 0x14, Width: Int(4)},
	{Name: "_0x4", Offset: 0x4, Width: Int(4)},
	{Name: "requirement_idx", Offset: 0x8, Width: Int(8), Role: Ref, Target: Requirements},
	{Name: "value2", Offset: 0x18, Width: Int(4)},
	{Name: "value3", Offset: 0x1C, Width: Int(4)},
	{Name: "value4", Offset: 0x20, Width: Int(4)},
	{Name: "value5", Offset: 0x24, Width: Int(4)},
}

var t8OtherMovePropFields = []Field{
	{Name: "id", Offset: 0x8, Width: Int(4)},
	{Name: "requirement_idx", Offset: 0x0, Width: Int(8), Role: Ref, Target: Requirements},
	{Name: "value", Offset: 0xC, Width: Int(4)},
	{Name: "value2", Offset: 0x10, Width: Int(4)},
	{Name: "value3", Offset: 0x14, Width: Int(4)},
	{Name: "value4", Offset: 0x18, Width: Int(4)},
	{Name: "value5", Offset: 0x1C, Width: Int(4)},
}

var t8VoiceclipFields = []Field{
	{Name: "val1", Offset: 0x0, Width: Int(4)},
	{Name: "val2", Offset: 0x4, Width: Int(4)},
	{Name: "val3", Offset: 0x8, Width: Int(4)},
}

var t8HitConditionFields = []Field{
	{Name: "requirement_idx", Offset: 0x0, Width: Int(8), Role: Ref, Target: Requirements},
	{Name: "damage", Offset: 0x8, Width: Int(4)},
	{Name: "reaction_list_idx", Offset: 0x10, Width: Int(8), Role: Ref, Target: ReactionList},
}

var t8MoveFields = []Field{
	{Name: "name_key", Offset: 0x0, Width: Encrypted()},
	{Name: "anim_key", Offset: 0x20, Width: Encrypted()},
	{Name: "name_key_related", Offset: 0x10, Width: Array(4, 4)},
	{Name: "anim_key_related", Offset: 0x30, Width: Array(4, 4)},
	{Name: "anim_name", Offset: NoOffset, Width: StringPtr()},
	{Name: "name", Offset: NoOffset, Width: StringPtr()},
	{Name: "anim_addr_enc1", Offset: 0x50, Width: Int(4)},
	{Name: "anim_addr_enc2", Offset: 0x54, Width: Int(4)},
	{Name: "vuln", Offset: 0x58, Width: Encrypted()},
	{Name: "vuln_related", Offset: 0x68, Width: Array(4, 4)},
	{Name: "hitlevel", Offset: 0x78, Width: Encrypted()},
	{Name: "hitlevel_related", Offset: 0x88, Width: Array(4, 4)},
	{Name: "cancel_idx", Offset: 0x98, Width: Int(8), Role: Ref, Target: Cancels},
	{Name: "cancel1_addr", Offset: 0xA0, Width: Int(8)},
	{Name: "u1", Offset: 0xA8, Width: Int(8)},
	{Name: "u2", Offset: 0xB0, Width: Int(8)},
	{Name: "u3", Offset: 0xB8, Width: Int(8)},
	{Name: "u4", Offset: 0xC0, Width: Int(8)},
	{Name: "u6", Offset: 0xC8, Width: Int(4)},
	{Name: "transition", Offset: 0xCC, Width: Int(2)},
	{Name: "anim_max_len", Offset: 0x120, Width: Int(4)},
	{Name: "_0xCE", Offset: 0xCE, Width: Int(2)},
	{Name: "_0xD0", Offset: 0xD0, Width: Encrypted()},
	{Name: "_0xD0_related", Offset: 0xE0, Width: Array(4, 4)},
	{Name: "ordinal_id", Offset: 0xF0, Width: Encrypted()},
	{Name: "ordinal_id_related", Offset: 0x100, Width: Array(4, 4)},
	{Name: "hit_condition_idx", Offset: 0x110, Width: Int(8), Role: Ref, Target: HitConditions},
	{Name: "_0x118", Offset: 0x118, Width: Int(4)},
	{Name: "_0x11C", Offset: 0x11C, Width: Int(4)},
	{Name: "airborne_start", Offset: 0x124, Width: Int(4)},
	{Name: "airborne_end", Offset: 0x128, Width: Int(4)},
	{Name: "ground_fall", Offset: 0x12C, Width: Int(4)},
	{Name: "voiceclip_idx", Offset: 0x130, Width: Int(8), Role: Ref, Target: Voiceclips},
	{Name: "extra_properties_idx", Offset: 0x138, Width: Int(8), Role: Ref, Target: ExtraMoveProperties},
	{Name: "move_start_properties_idx", Offset: 0x140, Width: Int(8), Role: Ref, Target: MoveStartProps},
	{Name: "move_end_properties_idx", Offset: 0x148, Width: Int(8), Role: Ref, Target: MoveEndProps},
	{Name: "hitbox_location", Offset: NoOffset, Width: Int(4), Role: Derived},
	{Name: "u15", Offset: 0x150, Width: Int(4)},
	{Name: "_0x154", Offset: 0x154, Width: Int(4)},
	{Name: "first_active_frame", Offset: 0x158, Width: Int(4)},
	{Name: "last_active_frame", Offset: 0x15C, Width: Int(4)},
	{Name: "hitbox1_first_active_frame", Offset: 0x160, Width: Int(4)},
	{Name: "hitbox1_last_active_frame", Offset: 0x164, Width: Int(4)},
	{Name: "hitbox1_location", Offset: 0x168, Width: Int(4)},
	{Name: "hitbox1_related_floats", Offset: 0x16C, Width: Array(9, 4)},
	{Name: "hitbox2_first_active_frame", Offset: 0x190, Width: Int(4)},
	{Name: "hitbox2_last_active_frame", Offset: 0x194, Width: Int(4)},
	{Name: "hitbox2_location", Offset: 0x198, Width: Int(4)},
	{Name: "hitbox2_related_floats", Offset: 0x19C, Width: Array(9, 4)},
	{Name: "hitbox3_first_active_frame", Offset: 0x1C0, Width: Int(4)},
	{Name: "hitbox3_last_active_frame", Offset: 0x1C4, Width: Int(4)},
	{Name: "hitbox3_location", Offset: 0x1C8, Width: Int(4)},
	{Name: "hitbox3_related_floats", Offset: 0x1CC, Width: Array(9, 4)},
	{Name: "hitbox4_first_active_frame", Offset: 0x1F0, Width: Int(4)},
	{Name: "hitbox4_last_active_frame", Offset: 0x1F4, Width: Int(4)},
	{Name: "hitbox4_location", Offset: 0x1F8, Width: Int(4)},
	{Name: "hitbox4_related_floats", Offset: 0x1FC, Width: Array(9, 4)},
	{Name: "hitbox5_first_active_frame", Offset: 0x220, Width: Int(4)},
	{Name: "hitbox5_last_active_frame", Offset: 0x224, Width: Int(4)},
	{Name: "hitbox5_location", Offset: 0x228, Width: Int(4)},
	{Name: "hitbox5_related_floats", Offset: 0x22C, Width: Array(9, 4)},
	{Name: "hitbox6_first_active_frame", Offset: 0x250, Width: Int(4)},
	{Name: "hitbox6_last_active_frame", Offset: 0x254, Width: Int(4)},
	{Name: "hitbox6_location", Offset: 0x258, Width: Int(4)},
	{Name: "hitbox6_related_floats", Offset: 0x25C, Width: Array(9, 4)},
	{Name: "hitbox7_first_active_frame", Offset: 0x280, Width: Int(4)},
	{Name: "hitbox7_last_active_frame", Offset: 0x284, Width: Int(4)},
	{Name: "hitbox7_location", Offset: 0x288, Width: Int(4)},
	{Name: "hitbox7_related_floats", Offset: 0x28C, Width: Array(9, 4)},
	{Name: "hitbox8_first_active_frame", Offset: 0x2B0, Width: Int(4)},
	{Name: "hitbox8_last_active_frame", Offset: 0x2B4, Width: Int(4)},
	{Name: "hitbox8_location", Offset: 0x2B8, Width: Int(4)},
	{Name: "hitbox8_related_floats", Offset: 0x2BC, Width: Array(9, 4)},
	{Name: "u17", Offset: 0x2E0, Width: Int(4)},
	{Name: "unk5", Offset: 0x2E4, Width: Array(88, 4)},
	{Name: "u18", Offset: 0x444, Width: Int(4)},
}

var t8InputExtradataFields = []Field{
	{Name: "u1", Offset: 0x0, Width: Int(4)},
	{Name: "u2", Offset: 0x4, Width: Int(4)},
}

var t8InputSequenceFields = []Field{
	{Name: "u1", Offset: 0x0, Width: Int(2)},
	{Name: "u2", Offset: 0x2, Width: Int(2)},
	{Name: "u3", Offset: 0x4, Width: Int(4)},
	{Name: "extradata_idx", Offset: 0x8, Width: Int(8), Role: Ref, Target: InputExtradata},
}

var t8ProjectileFields = []Field{
	{Name: "u1", Offset: 0x0, Width: Array(35, 4)},
	{Name: "u2", Offset: 0xA0, Width: Array(16, 4)},
	{Name: "hit_condition_idx", Offset: 0x90, Width: Int(8), Role: Ref, Target: HitConditions},
	{Name: "cancel_idx", Offset: 0x98, Width: Int(8), Role: Ref, Target: Cancels},
}

var t8ThrowExtraFields = []Field{
	{Name: "u1", Offset: 0x0, Width: Int(4)},
	{Name: "u2", Offset: 0x4, Width: Array(4, 2)},
}

var t8ThrowFields = []Field{
	{Name: "u1", Offset: 0x0, Width: Int(8)},
	{Name: "throwextra_idx", Offset: 0x8, Width: Int(8), Role: Ref, Target: ThrowExtras},
}

var t8ParryRelatedFields = []Field{
	{Name: "value", Offset: 0x0, Width: Int(4)},
}

var t8DialogueFields = []Field{
	{Name: "type", Offset: 0x0, Width: Int(2)},
	{Name: "id", Offset: 0x2, Width: Int(2)},
	{Name: "_0x4", Offset: 0x4, Width: Int(4)},
	{Name: "requirement_idx", Offset: 0x8, Width: Int(8), Role: Ref, Target: Requirements},
	{Name: "voiceclip_key", Offset: 0x10, Width: Int(4)},
	{Name: "facial_anim_idx", Offset: 0x14, Width: Int(4)},
}
