package display

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// command packs four 10 bit arguments and the command code into six bytes.
func command(code uint8, buf []byte, vars [4]int) []byte {
	if len(buf) < 6 {
		buf = make([]byte, 6)
	}

	buf[0] = byte(vars[0] >> 2)
	buf[1] = byte(((vars[0] & 3) << 6) + (vars[1] >> 4))
	buf[2] = byte(((vars[1] & 0xF) << 4) + (vars[2] >> 6))
	buf[3] = byte(((vars[2] & 0x3F) << 2) + (vars[3] >> 8))
	buf[4] = byte(vars[3] & 0xFF)
	buf[5] = code
	return buf
}

func (p *Panel) sendCMD(code uint8, vars ...int) error {
	if len(vars) > 4 {
		return errors.New("too many vars")
	}

	var args [4]int
	copy(args[:], vars)
	return p.write(command(code, nil, args))
}

// sendOpt sends a fixed size frame whose payload follows the command header.
func (p *Panel) sendOpt(code uint8, fixed int, payload []byte) error {
	if len(payload)+6 > fixed {
		return errors.New("too many bytes")
	}

	buf := make([]byte, fixed)
	copy(buf[6:], payload)
	return p.write(command(code, buf, [4]int{}))
}

func (p *Panel) write(bs []byte) error {
	start := time.Now()
	n, err := p.port.Write(bs)
	if err != nil {
		return err
	}

	data := ""
	if len(bs) <= 16 {
		data = fmt.Sprintf("%x", bs)
	}

	p.logger.With(
		zap.Int("sent", n),
		zap.Duration("cost", time.Since(start)),
		zap.String("data", data),
	).Debug("transfer")

	return nil
}
