package config

// Setting key constants to prevent typos and enable autocomplete
const (
	// Destination directory, relative to the working directory at invocation
	KeyDestDir = "DEST_DIR"

	// Permissions
	KeyDirPerm  = "DIR_PERM"
	KeyFilePerm = "FILE_PERM"
)

// Defaults holds the fixed value for every setting key.
// Values are octal strings for permission keys.
var Defaults = map[string]string{
	KeyDestDir:  "test_files",
	KeyDirPerm:  "0755",
	KeyFilePerm: "0644",
}
