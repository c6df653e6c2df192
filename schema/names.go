package schema

import "strings"

// UnknownCharacter is the name given to a raw character name no table knows
const UnknownCharacter = "UNKNOWN"

type nameMapping struct {
	raw  string
	name string
}

// CharacterName maps the raw (Shift JIS) character name of legacy versions onto a readable tag.
// A known prefix keeps the printable remainder, so "[LAW]_STORY" style names survive.
// Versions that store readable names return raw unchanged.
func (p *Profile) CharacterName(raw []byte) string {
	var table []nameMapping
	switch p.version {
	case T5, T5DR:
		table = t5CharacterNames
	case T4:
		table = t4CharacterNames
	default:
		if p.hasRawNames() {
			return UnknownCharacter
		}
		return string(raw)
	}

	s := string(raw)
	for _, m := range table {
		if strings.HasPrefix(s, m.raw) {
			return m.name + nameSuffix(s[len(m.raw):])
		}
	}
	return UnknownCharacter
}

func (p *Profile) hasRawNames() bool {
	for _, f := range p.header.Strings {
		if f.Name == "character_name" {
			return f.Width.Kind == WidthInvalidStringPtr
		}
	}
	return false
}

func nameSuffix(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == ' ' || c == '\\' || c == '[' || c == ']':
			b.WriteByte('_')
		case c >= 0x20 && c < 0x7F, c >= '\t' && c <= '\r':
			b.WriteByte(c)
		}
	}
	return b.String()
}

// MovesetName builds the folder and document name of an export: "t7_KAZUYA".
// Names already carrying the version prefix are kept, a fully bracketed tag loses its brackets.
func MovesetName(version Version, characterName string) string {
	prefix := string(version)
	if strings.HasPrefix(characterName, prefix) {
		return characterName
	}
	if strings.HasPrefix(characterName, "[") {
		if strings.HasSuffix(characterName, "]") {
			characterName = characterName[1 : len(characterName)-1]
		} else {
			characterName = strings.ReplaceAll(characterName, "[", "__")
			characterName = strings.ReplaceAll(characterName, "]", "__")
		}
	}
	return prefix + "_" + strings.ToUpper(characterName)
}

var t5CharacterNames = []nameMapping{
	{"\x95\x97\x8a\xd4 \x90m", "[JIN]"},
	{"BAEK DOO SAN", "[BAEK_DOO_SAN]"},
	{"[\x83G\x83f\x83B\x81E\x83S\x83\x8b\x83h\x81[]", "[EDDY]"},
	{"[DEVIL JIN]", "[DEVIL_JIN]"},
	{"[\x8d\x95\x90l\x94E\x8e\xd2]", "[RAVEN]"},
	{"[ \x94\xf2\x92\xb9 ]", "[ASUKA]"},
	{"[\x91\xbe\x8b\xc9\x8c\x9d]", "[FENG]"},
	{"[\x8c\xb5\x97\xb3]", "[GANRYU]"},
	{"[ \x89\xa4 \x96\xb8\x97\x8b ]", "[WANG]"},
	{"[\x83A\x83}\x83L\x83\x93]", "[ARMOR_KING]"},
	{"[\x93S\x8c\x9d5\x83{\x83X]", "[JINPACHI]"},
	{"[ VALE-TUDO ]", "[MARDUK]"},
	{"[ANNA]", "[ANNA]"},
	{"[ \x83\x8d\x83E ]", "[LAW]"},
	{"[\x89\xd4\x98Y]", "[HWOARANG]"},
	{"[\x83L\x83\x93\x83O]", "[KING]"},
	{"[EMILIE]", "[EMILIE]"},
	{"[\x90V\x83L\x83\x83\x83\x89(\x91\xe5\x8d\xb2)]", "[DRAGUNOV]"},
	{"\x8eO\x93\x87 \x95\xbd\x94\xaa", "[HEIHACHI]"},
	{"[\x83N\x83\x8a\x83X\x83e\x83B]", "[CHRISTIE]"},
	{"[\x83|\x81[\x83\x8b]", "[PAUL]"},
	{"[\x83W\x83\x83\x83b\x83N\x82T]", "[JACK]"},
	{"\x83u\x83\x8b\x81[\x83X", "[BRUCE]"},
	{"[\x83\x8d\x83W\x83\x83\x81[]", "[ROGER]"},
	{"[ \x97\x8b \x95\x90\x97\xb4 ]", "[LEI_WULONG]"},
	{"[\x83j\x81[\x83i]", "[NINA]"},
	{"\x83{\x83N\x83T\x81[", "[STEVE_FOX]"},
	{"[ \x8eO\x93\x87 \x88\xea\x94\xaa ]", "[KAZUYA]"},
	{"\x97\xbd \x8b\xc5\x89J", "[LIN_XIAOYU]"},
	{"[ \x97\x9b \x92\xb4\x98T ]", "[LEE]"},
	{"[ \x83W\x83\x85\x83\x8a\x83A ]", "[JULIA]"},
	{"\x8bg\x8c\xf5", "[YOSHIMITSU]"},
	{"\x83u\x83\x89\x83C\x83A\x83\x93", "[BRYAN]"},
	{"[\x83N\x83}]", "[PANDA]"},
}

var t4CharacterNames = []nameMapping{
	{"\x95\x97\x8a\xd4 \x90m", "[JIN]"},
	{"[\x83G\x83f\x83B\x81E\x83S\x83\x8b\x83h\x81[]", "[EDDY]"},
	{"[ VALE-TUDO ]", "[MARDUK]"},
	{"[ \x83\x8d\x83E ]", "[LAW]"},
	{"[\x89\xd4\x98Y]", "[HWOARANG]"},
	{"[\x83L\x83\x93\x83O]", "[KING]"},
	{"\x8eO\x93\x87 \x95\xbd\x94\xaa", "[HEIHACHI]"},
	{"[\x83N\x83\x8a\x83X\x83e\x83B]", "[CHRISTIE]"},
	{"[\x83|\x81[\x83\x8b]", "[PAUL]"},
	{"[ \x97\x8b \x95\x90\x97\xb4 ]", "[LEI_WULONG]"},
	{"[\x83j\x81[\x83i]", "[NINA]"},
	{"\x83{\x83N\x83T\x81[", "[STEVE_FOX]"},
	{"[ \x8eO\x93\x87 \x88\xea\x94\xaa ]", "[KAZUYA]"},
	{"\x97\xbd \x8b\xc5\x89J", "[LIN_XIAOYU]"},
	{"[ \x97\x9b \x92\xb4\x98T ]", "[LEE]"},
	{"[ \x83W\x83\x85\x83\x8a\x83A ]", "[JULIA]"},
	{"\x8bg\x8c\xf5", "[YOSHIMITSU]"},
	{"\x83u\x83\x89\x83C\x83A\x83\x93", "[BRYAN]"},
	{"[\x83N\x83}]", "[PANDA]"},
}
