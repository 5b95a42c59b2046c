package hostos

// windows11Build is the first build number of Windows 11, which still
// reports itself as version 10.0.
const windows11Build = 22000

// IsWindows11OrGreater compares a Windows version against 10.0.22000.
func IsWindows11OrGreater(major, minor, build uint32) bool {
	if major != 10 {
		return major > 10
	}
	if minor != 0 {
		return minor > 0
	}
	return build >= windows11Build
}

// DisplaySwitchArgs returns the two DisplaySwitch.exe arguments that
// select a single display. Windows 11 replaced the named switches with
// numeric ones.
func DisplaySwitchArgs(windows11 bool) [2]string {
	if windows11 {
		return [2]string{"1", "4"}
	}
	return [2]string{"/internal", "/external"}
}
