package render

// Menu icons.
var (
	IconPlay     = Frame{0x20, 0x30, 0x38, 0x3C, 0x3C, 0x38, 0x30, 0x20}
	IconTrophy   = Frame{0x66, 0xBD, 0xBD, 0x7E, 0x3C, 0x18, 0x18, 0x3C}
	IconSettings = Frame{0x1C, 0x18, 0x11, 0x1B, 0x3F, 0x70, 0xE0, 0xC0}
	IconInfo     = Frame{0x18, 0x18, 0x00, 0x18, 0x38, 0x18, 0x18, 0x3C}
	IconQuestion = Frame{0x18, 0x3C, 0x66, 0x0C, 0x18, 0x00, 0x18, 0x18}
)
