package midi

import (
	"strings"

	"github.com/leandrodaf/lilymidi/sdk/contracts"
)

// Split walks a raw packet holding one or more channel messages and calls fn
// for each. System messages end the walk; running status is not supported.
func Split(data []byte, fn func(status, data1, data2 byte)) {
	for i := 0; i < len(data); {
		status := data[i]
		if status&0x80 == 0 || status >= 0xF0 {
			return
		}
		size := 3
		if kind := status & 0xF0; kind == 0xC0 || kind == 0xD0 {
			size = 2
		}
		if i+size > len(data) {
			return
		}
		var d2 byte
		if size == 3 {
			d2 = data[i+2]
		}
		fn(status, data[i+1], d2)
		i += size
	}
}

// FindDevice returns the index of the device whose trimmed name equals name.
func FindDevice(devices []contracts.DeviceInfo, name string) (int, error) {
	want := strings.TrimSpace(name)
	for i, d := range devices {
		if strings.TrimSpace(d.Name) == want {
			return i, nil
		}
	}
	return -1, contracts.ErrDeviceNotFound
}
