package generator

import (
	"bytes"
	"fmt"
	"image"
	"io"
	"os"
	"regexp"
	"strconv"

	"ImageHeaders/utils"
)

var (
	ifndefLine = regexp.MustCompile(`(?m)^#ifndef (\S+)\s*$`)
	defineLine = regexp.MustCompile(`(?m)^#define (\S+)\s*$`)
	declLine   = regexp.MustCompile(`(?m)^uint32_t ([A-Za-z_][A-Za-z0-9_]*)\[(\d+) \* (\d+)\] = \{\s*$`)
)

// Header is a generated header read back into memory.
type Header struct {
	Guard      string
	Identifier string
	Width      int
	Height     int
	Pixels     []uint32 // row-major, len == Width*Height
}

// At returns the packed 0xRRGGBB value of the pixel at (x, y).
func (h *Header) At(x, y int) uint32 {
	return h.Pixels[y*h.Width+x]
}

// ParseHeader reads a header produced by Accumulate.
func ParseHeader(r io.Reader) (*Header, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}

	ifndef := ifndefLine.FindSubmatch(data)
	define := defineLine.FindSubmatch(data)
	if ifndef == nil || define == nil {
		return nil, fmt.Errorf("missing include guard")
	}
	if !bytes.Equal(ifndef[1], define[1]) {
		return nil, fmt.Errorf("include guard mismatch: #ifndef %s vs #define %s", ifndef[1], define[1])
	}

	loc := declLine.FindSubmatchIndex(data)
	if loc == nil {
		return nil, fmt.Errorf("missing uint32_t array declaration")
	}
	h := &Header{Guard: string(ifndef[1]), Identifier: string(data[loc[2]:loc[3]])}
	if h.Width, err = strconv.Atoi(string(data[loc[4]:loc[5]])); err != nil {
		return nil, fmt.Errorf("invalid declared width: %w", err)
	}
	if h.Height, err = strconv.Atoi(string(data[loc[6]:loc[7]])); err != nil {
		return nil, fmt.Errorf("invalid declared height: %w", err)
	}
	if err := utils.CheckCanvasSize(h.Width, h.Height); err != nil {
		return nil, fmt.Errorf("invalid declared size: %w", err)
	}
	if want := utils.GuardToken(h.Identifier); h.Guard != want {
		return nil, fmt.Errorf("include guard %s does not match identifier %s (want %s)", h.Guard, h.Identifier, want)
	}

	body := data[loc[1]:]
	end := bytes.Index(body, []byte("};"))
	if end < 0 {
		return nil, fmt.Errorf("unterminated array initializer")
	}
	body = body[:end]

	fields := bytes.Split(body, []byte(","))
	h.Pixels = make([]uint32, 0, len(fields))
	for i, field := range fields {
		lit := bytes.TrimSpace(field)
		if len(lit) == 0 {
			continue
		}
		v, ok := parseLiteral(lit)
		if !ok {
			return nil, fmt.Errorf("element %d: malformed literal %q", i, lit)
		}
		h.Pixels = append(h.Pixels, v)
	}
	if len(h.Pixels) != h.Width*h.Height {
		return nil, fmt.Errorf("array declares %d * %d elements but holds %d", h.Width, h.Height, len(h.Pixels))
	}
	return h, nil
}

// parseLiteral accepts exactly 0x followed by six lowercase hex digits.
func parseLiteral(lit []byte) (uint32, bool) {
	if len(lit) != 8 || lit[0] != '0' || lit[1] != 'x' {
		return 0, false
	}
	var v uint32
	for _, c := range lit[2:] {
		switch {
		case c >= '0' && c <= '9':
			v = v<<4 | uint32(c-'0')
		case c >= 'a' && c <= 'f':
			v = v<<4 | uint32(c-'a'+10)
		default:
			return 0, false
		}
	}
	return v, true
}

// VerifyHeader reads the header at path back and compares every element to
// the pixel it was generated from.
func VerifyHeader(path string, img image.Image, spec HeaderSpec) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("%w: opening %s for verification: %w", ErrIO, path, err)
	}
	defer f.Close()

	h, err := ParseHeader(f)
	if err != nil {
		return fmt.Errorf("%w: verifying %s: %w", ErrIO, path, err)
	}
	if h.Identifier != spec.Identifier || h.Width != spec.Width || h.Height != spec.Height {
		return fmt.Errorf("%w: verifying %s: declared %s[%d * %d], want %s[%d * %d]",
			ErrIO, path, h.Identifier, h.Width, h.Height, spec.Identifier, spec.Width, spec.Height)
	}
	b := img.Bounds()
	for y := 0; y < spec.Height; y++ {
		for x := 0; x < spec.Width; x++ {
			want := Pack(channels(img.At(b.Min.X+x, b.Min.Y+y), spec.Background))
			if got := h.At(x, y); got != want {
				return fmt.Errorf("%w: verifying %s: pixel (%d, %d) is 0x%06x, want 0x%06x", ErrIO, path, x, y, got, want)
			}
		}
	}
	return nil
}
