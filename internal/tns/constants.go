package tns

// HeaderMagic identifies the first entry of a .tns archive ("*TIMLP").
// It replaces the standard ZIP local header signature, and is the only
// thing the calculator OS looks at to decide a file is a TNS document.
var HeaderMagic = [6]byte{'*', 'T', 'I', 'M', 'L', 'P'}

// Version is the 4-byte ASCII version tag following HeaderMagic.
type Version [4]byte

var (
	// VersionDefault is the tag for regular documents ("0500").
	VersionDefault = Version{'0', '5', '0', '0'}
	// VersionBitmap is the tag for documents containing bitmaps ("0700").
	VersionBitmap = Version{'0', '7', '0', '0'}
)

// localHeaderSig is the standard ZIP local file header signature
// (PK\x03\x04), used for every entry after the first.
var localHeaderSig = [4]byte{0x50, 0x4B, 0x03, 0x04}

// centralDirSig is the standard ZIP central directory header signature (PK\x01\x02).
var centralDirSig = [4]byte{0x50, 0x4B, 0x01, 0x02}

// EndSig terminates the archive in place of the standard end-of-central-directory
// signature PK\x05\x06. The calculator locates the directory by scanning
// backwards for these four bytes.
var EndSig = [4]byte{'T', 'I', 'P', 'D'}

// Method is the compression method code stored in entry headers.
type Method uint16

const (
	// MethodProtected is TI's private method code: raw deflate followed by
	// the keystream cipher. Not a registered ZIP method.
	MethodProtected Method = 0x0D
	// MethodDeflated is the standard deflate method code.
	MethodDeflated Method = 0x08
)

const (
	// versionNeeded / versionMadeBy match what the original TI tooling emits.
	versionNeeded uint16 = 20
	versionMadeBy uint16 = 20

	// dosTimestamp is the fixed DOS date/time stamp written for every entry.
	// Documents are byte-for-byte reproducible, so no wall clock is used.
	dosTimestamp uint32 = 0x00200000
)
