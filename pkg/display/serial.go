package display

import (
	"strings"
	"time"

	"github.com/pkg/errors"
	"go.bug.st/serial"
)

type SerialOptions struct {
	DTR         bool
	RTS         bool
	BaudRate    int
	ReadTimeout time.Duration
}

// OpenSerial opens the first port whose name contains name.
func OpenSerial(name string, opts *SerialOptions) (serial.Port, error) {
	ports, err := serial.GetPortsList()
	if err != nil {
		return nil, err
	}

	var matched string
	for _, p := range ports {
		if strings.Contains(p, name) {
			matched = p
			break
		}
	}
	if matched == "" {
		return nil, errors.Errorf("USB port %q not found", name)
	}

	port, err := serial.Open(matched, &serial.Mode{BaudRate: opts.BaudRate})
	if err != nil {
		return nil, err
	}

	if err := port.SetDTR(opts.DTR); err != nil {
		return nil, err
	}
	if err := port.SetRTS(opts.RTS); err != nil {
		return nil, err
	}
	if opts.ReadTimeout > 0 {
		if err := port.SetReadTimeout(opts.ReadTimeout); err != nil {
			return nil, err
		}
	}

	return port, nil
}
