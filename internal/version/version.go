package version

import "strconv"

type Version struct {
	MajorNumber int64
	MinorNumber int64
	PatchNumber int64
}

// String generate a human readable Version
func (v *Version) String() string {
	return strconv.FormatInt(v.MajorNumber, 10) + "." + strconv.FormatInt(v.MinorNumber, 10) + "." + strconv.FormatInt(v.PatchNumber, 10)
}

var AppVersion = Version{
	MajorNumber: 0,
	MinorNumber: 2,
	PatchNumber: 0,
}
