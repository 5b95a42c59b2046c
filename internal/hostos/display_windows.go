//go:build windows

package hostos

import (
	"errors"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	user32                  = windows.NewLazySystemDLL("user32.dll")
	procEnumDisplayDevicesW = user32.NewProc("EnumDisplayDevicesW")
)

const displayDeviceActive = 0x00000001

// displayDevice mirrors DISPLAY_DEVICEW.
type displayDevice struct {
	cb           uint32
	deviceName   [32]uint16
	deviceString [128]uint16
	stateFlags   uint32
	deviceID     [128]uint16
	deviceKey    [128]uint16
}

func enumDisplayDevice(device *uint16, index uint32) (*displayDevice, bool) {
	dd := &displayDevice{}
	dd.cb = uint32(unsafe.Sizeof(*dd))
	r, _, _ := procEnumDisplayDevicesW.Call(
		uintptr(unsafe.Pointer(device)),
		uintptr(index),
		uintptr(unsafe.Pointer(dd)),
		0,
	)
	return dd, r != 0
}

// activeDisplayID returns the device id of the first active monitor
// attached to any display adapter.
func activeDisplayID() (string, error) {
	for i := uint32(0); ; i++ {
		adapter, ok := enumDisplayDevice(nil, i)
		if !ok {
			break
		}
		for j := uint32(0); ; j++ {
			monitor, ok := enumDisplayDevice(&adapter.deviceName[0], j)
			if !ok {
				break
			}
			if monitor.stateFlags&displayDeviceActive != 0 {
				return windows.UTF16ToString(monitor.deviceID[:]), nil
			}
		}
	}
	return "", errors.New("não foi possível identificar a tela atual")
}
