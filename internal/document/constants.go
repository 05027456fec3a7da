package document

// luaWrapperHead is the problem wrapper preceding an embedded Lua script.
// It is a pre-tokenized XML fragment: the calculator's loader consumes
// string-table tokens (0x0E 0xNN) and dictionary escapes in place of
// repeated tag text, so the bytes are reproduced verbatim rather than
// generated from a DOM.
const luaWrapperHead = "TIXC0100-1.0?><prob xmlns=\"urn:TI.P" +
	"\xa8\x5f\x5b\x1f\x0a" +
	"\" ver=\"1.0\" pbname=\"\"><sym>\x0e\x01" +
	"<card clay=\"0\" h1=\"\xf1\x00\x00\xff\" h2=\"\xf1\x00\x00\xff\"" +
	" w1=\"\xf1\x00\x00\xff\" w2=\"\xf1\x00\x00\xff\">" +
	"<isDummyCard>0\x0e\x03<flag>0\x0e\x04" +
	"<wdgt xmlns:sc=\"urn:TI.S\xac\x84\xf2\x2aApp\"" +
	" type=\"TI.S\xac\x84\xf2\x2aApp\" ver=\"1.0\">" +
	"<sc:mFlags>0\x0e\x06<sc:value>-1\x0e\x07" +
	"<sc:script version=\"512\" id=\"0\">" +
	"<![CDATA["

// luaWrapperTail closes the CDATA section and the tokenized element stack.
const luaWrapperTail = "]]>\x0e\x08\x0e\x05\x0e\x02\x0e\x00"

// pyWrapperHead is the problem wrapper for a Python editor widget. The
// script itself is not embedded; the wrapper references the companion
// .py archive entry by name.
const pyWrapperHead = "TIXC0100-1.0?><prob xmlns=\"urn:TI.Problem\" ver=\"1.0\" pbname=\"\">" +
	"<sym>\x0e\x01<card clay=\"0\" h1=\"10000\" h2=\"10000\" w1=\"10000\" " +
	"w2=\"10000\"><isDummyCard>0\x0e\x03<flag>0\x0e\x04<wdgt xmlns:py=\"urn:" +
	"TI.PythonEditor\" type=\"TI.PythonEditor\" ver=\"1.0\"><py:data><py:name>"

// pyWrapperTail closes the Python widget after the referenced filename.
const pyWrapperTail = "\x0e\x07<py:dirf>-10000000\x0e\x08\x0e\x06<py:mFlags>1024\x0e\x09" +
	"<py:value>10\x0e\x0a\x0e\x05\x0e\x02\x0e\x00"

// DefaultDocument is the Document.xml payload every generated archive
// carries as its first entry. It is stored already protected (prologue,
// deflate and keystream applied), so it goes straight into a protected
// entry without passing through the pipeline again.
var DefaultDocument = []byte{
	0x0F, 0xCE, 0xD8, 0xD2, 0x81, 0x06, 0x86, 0x5B, 0x4A, 0x4A, 0xC5, 0xCE, 0xA9, 0x16, 0xF2, 0xD5, 0x1D, 0xA8, 0x2F, 0x6E,
	0x00, 0x22, 0xF2, 0xF0, 0xC1, 0xA6, 0x06, 0x77, 0x4D, 0x7E, 0xA6, 0xC0, 0x3A, 0xF0, 0x5C, 0x74, 0xBA, 0xAA, 0x44, 0x60,
	0xCD, 0x58, 0xE6, 0x70, 0xD7, 0x40, 0xF6, 0x9C, 0x17, 0xDC, 0xF0, 0x94, 0x77, 0xBF, 0xCA, 0xDE, 0xF7, 0x02, 0x09, 0xC9,
	0x62, 0xB1, 0x5D, 0xEF, 0x22, 0xFA, 0x51, 0x37, 0xA0, 0x81, 0x91, 0x48, 0xE1, 0x83, 0x4D, 0xAD, 0x08, 0x31, 0x2D, 0xD0,
	0xD3, 0xE3, 0x2D, 0x60, 0xAB, 0x13, 0xC2, 0x98, 0x2B, 0xED, 0x39, 0x5B, 0x09, 0x24, 0x39, 0x92, 0x2F, 0x0C, 0x7A, 0x4C,
	0x95, 0x74, 0x91, 0x3B, 0x0C, 0xF4, 0x60, 0xCC, 0x73, 0x27, 0xCB, 0x07, 0x7E, 0x7F, 0xA9, 0x17, 0x87, 0xE2, 0xAC, 0xA2,
	0x3B, 0xCC, 0xA0, 0xC4, 0xE3, 0x8E, 0x89, 0xF0, 0xC0, 0x51, 0x9F, 0xC2, 0xBE, 0xCE, 0x28, 0x45, 0xC3, 0xD4, 0x11, 0x90,
	0xA6, 0xEC, 0x53, 0xA0, 0xFB, 0x5B, 0x46, 0x6B, 0x41, 0xAD, 0xE9, 0x53, 0xBB, 0x97, 0xDB, 0xB1, 0xD2, 0x68, 0xE2, 0xF6,
	0x36, 0x0F, 0x26, 0x36, 0x75, 0x9B, 0xE9, 0x1F, 0x48, 0xAD, 0xE9, 0x29, 0x67, 0x00, 0x58, 0x19, 0xC3, 0xC0, 0x12, 0x76,
	0xA0, 0x4A, 0x73, 0xF3, 0xB1, 0xD3, 0x09, 0x18, 0xD6, 0x06, 0xDD, 0x97, 0x24, 0x53, 0x3E, 0x22, 0xA4, 0xFB, 0x82, 0x50,
	0x7B, 0x7C, 0x12, 0x88, 0x4E, 0x7D, 0x41, 0x80, 0xFE, 0x72, 0x92, 0x29, 0x87, 0xE8, 0x5C, 0x56, 0x72, 0xFF, 0x29, 0x16,
	0x8C, 0x42, 0x5B, 0x8B, 0x9B, 0xA7, 0xD2, 0x08, 0x6D, 0xD3, 0x98, 0xFF, 0x91, 0xA9, 0x9E, 0xF3, 0x93, 0xA8, 0x2E, 0x1C,
	0xB2, 0xA9, 0x6B, 0x6A, 0xDF, 0xF6, 0xCE, 0x2D, 0x15, 0x17, 0xCE, 0x6E, 0xC0, 0x4F, 0x9A, 0x9C, 0x0E, 0xDF, 0x19, 0x8D,
	0x2D, 0xFA, 0x69, 0x9F, 0x11, 0xD2, 0x20, 0x12, 0xE0, 0x79, 0x14, 0x04, 0x4E, 0x62, 0x8F, 0x0A, 0x2A, 0x18, 0x72, 0x5A,
	0x8B, 0x80, 0xB3, 0x3C, 0x9B, 0xD5, 0x67, 0x59, 0x4B, 0x51, 0x4D, 0xE0, 0xC3, 0x38, 0x28, 0xC3, 0xDC, 0xCD, 0x39, 0x22,
	0x12, 0x8C, 0x40, 0x55,
}

// EncryptedPrologue precedes the deflated-and-protected problem payload
// inside its archive entry.
var EncryptedPrologue = []byte{
	0x0F, 0xCE, 0xD8, 0xD2, 0x81, 0x06, 0x86, 0x5B, 0x99, 0xDD, 0xA2, 0x3D, 0xD9, 0xE9, 0x4B, 0xD4, 0x31, 0xBB, 0x50, 0xB6,
	0x4D, 0xB3, 0x29, 0x24, 0x70, 0x60, 0x49, 0x38, 0x1C, 0x30, 0xF8, 0x99, 0x00, 0x4B, 0x92, 0x64, 0xE4, 0x58, 0xE6, 0xBC,
}
