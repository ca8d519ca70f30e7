package generator

import (
	"encoding/binary"
	"image"
	"image/color"
	"image/png"
	"math/rand"
	"os"
	"testing"
)

// writeBinary is a helper for the little-endian BMP fields.
func writeBinary(t *testing.T, f *os.File, data interface{}) {
	t.Helper()
	if err := binary.Write(f, binary.LittleEndian, data); err != nil {
		t.Fatalf("binary.Write failed: %v", err)
	}
}

// writeTestBMP writes a 24-bit BI_RGB bitmap whose pixels come from img.
func writeTestBMP(t *testing.T, path string, img image.Image) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create %s: %v", path, err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			t.Fatalf("error closing %s: %v", path, err)
		}
	}()

	b := img.Bounds()
	width, height := b.Dx(), b.Dy()
	const fileHeaderSize = 14
	const dibHeaderSize = 40
	rowSize := (width*3 + 3) &^ 3
	imageDataSize := uint32(rowSize * height)
	dataOffset := uint32(fileHeaderSize + dibHeaderSize)

	// BMP File Header
	if _, err := f.WriteString("BM"); err != nil {
		t.Fatalf("WriteString failed for signature: %v", err)
	}
	writeBinary(t, f, dataOffset+imageDataSize)
	writeBinary(t, f, uint16(0)) // Reserved 1
	writeBinary(t, f, uint16(0)) // Reserved 2
	writeBinary(t, f, dataOffset)

	// DIB Header (BITMAPINFOHEADER)
	writeBinary(t, f, uint32(dibHeaderSize))
	writeBinary(t, f, int32(width))
	writeBinary(t, f, int32(height)) // positive: rows stored bottom-up
	writeBinary(t, f, uint16(1))     // Planes
	writeBinary(t, f, uint16(24))    // Bits per pixel
	writeBinary(t, f, uint32(0))     // Compression - BI_RGB
	writeBinary(t, f, imageDataSize)
	writeBinary(t, f, int32(2835)) // X Pixels Per Meter
	writeBinary(t, f, int32(2835)) // Y Pixels Per Meter
	writeBinary(t, f, uint32(0))   // Colors Used
	writeBinary(t, f, uint32(0))   // Important Colors

	// Pixel Data (BGR order)
	row := make([]byte, rowSize)
	for y := height - 1; y >= 0; y-- {
		for x := 0; x < width; x++ {
			c := color.NRGBAModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
			row[x*3], row[x*3+1], row[x*3+2] = c.B, c.G, c.R
		}
		if _, err := f.Write(row); err != nil {
			t.Fatalf("failed writing pixel row %d: %v", y, err)
		}
	}
}

func writeTestPNG(t *testing.T, path string, img image.Image) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create %s: %v", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		t.Fatalf("failed to encode %s: %v", path, err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("error closing %s: %v", path, err)
	}
}

func solidImage(width, height int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func noiseImage(width, height int, seed int64) *image.NRGBA {
	rng := rand.New(rand.NewSource(seed))
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i] = uint8(rng.Intn(256))
		img.Pix[i+1] = uint8(rng.Intn(256))
		img.Pix[i+2] = uint8(rng.Intn(256))
		img.Pix[i+3] = 0xff
	}
	return img
}

func packedAt(img *image.NRGBA, x, y int) uint32 {
	c := img.NRGBAAt(x, y)
	return Pack(c.R, c.G, c.B)
}
