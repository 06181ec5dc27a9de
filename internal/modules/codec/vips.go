package codec

import (
	"fmt"
	"runtime"

	govips "github.com/davidbyttow/govips/v2/vips"
	"github.com/pixelpress/pixelpress/internal/modules/consts"
	"github.com/pixelpress/pixelpress/internal/modules/errs"
	"github.com/pixelpress/pixelpress/internal/modules/params"
)

// Startup initialises libvips. Call once at process start, Shutdown at exit.
func Startup(maxWorkers int) {
	if maxWorkers <= 0 {
		maxWorkers = runtime.NumCPU()
	}
	govips.Startup(&govips.Config{
		ConcurrencyLevel: maxWorkers,
	})
}

func Shutdown() {
	govips.Shutdown()
}

type Meta struct {
	Width  int
	Height int
	Format string
}

// Probe decodes just enough of data to report its dimensions and source
// format.
func Probe(data []byte) (Meta, error) {
	ref, err := govips.NewImageFromBuffer(data)
	if err != nil {
		return Meta{}, errs.Wrap(errs.KindDecode, "codec.probe", err)
	}
	defer ref.Close()
	return Meta{
		Width:  ref.Width(),
		Height: ref.Height(),
		Format: imageTypeName(ref.Format()),
	}, nil
}

type Result struct {
	Data   []byte
	Width  int
	Height int
}

// Transcode decodes data, applies the requested resize and re-encodes into
// the target format at the resolved quality.
func Transcode(data []byte, p params.CompressionParams) (Result, error) {
	ref, err := govips.NewImageFromBuffer(data)
	if err != nil {
		return Result{}, errs.Wrap(errs.KindDecode, "codec.transcode", err)
	}
	defer ref.Close()

	if p.ResizeRequested() {
		if err := resize(ref, p); err != nil {
			return Result{}, err
		}
	}

	encoded, err := export(ref, p)
	if err != nil {
		return Result{}, err
	}
	return Result{
		Data:   encoded,
		Width:  ref.Width(),
		Height: ref.Height(),
	}, nil
}

func resize(ref *govips.ImageRef, p params.CompressionParams) error {
	srcW, srcH := ref.Width(), ref.Height()
	var dstW, dstH int
	switch p.ResizeMode {
	case consts.ResizeStretch:
		dstW, dstH = StretchTo(srcW, srcH, p.Width, p.Height)
	default:
		dstW, dstH = FitWithin(srcW, srcH, p.Width, p.Height)
	}
	if dstW == srcW && dstH == srcH {
		return nil
	}
	hscale := float64(dstW) / float64(srcW)
	vscale := float64(dstH) / float64(srcH)
	err := ref.ResizeWithVScale(hscale, vscale, govips.KernelLanczos3)
	return errs.Wrap(errs.KindCompression, "codec.resize", err)
}

func export(ref *govips.ImageRef, p params.CompressionParams) ([]byte, error) {
	switch p.Format {
	case consts.FormatJPEG:
		ep := govips.NewJpegExportParams()
		ep.Quality = p.Quality
		ep.StripMetadata = true
		buf, _, err := ref.ExportJpeg(ep)
		return buf, errs.Wrap(errs.KindCompression, "codec.export.jpeg", err)
	case consts.FormatPNG:
		ep := govips.NewPngExportParams()
		ep.Compression = PNGCompressionLevel(p.Quality)
		ep.StripMetadata = true
		buf, _, err := ref.ExportPng(ep)
		return buf, errs.Wrap(errs.KindCompression, "codec.export.png", err)
	case consts.FormatWebP:
		ep := govips.NewWebpExportParams()
		ep.Quality = p.Quality
		ep.StripMetadata = true
		buf, _, err := ref.ExportWebp(ep)
		return buf, errs.Wrap(errs.KindCompression, "codec.export.webp", err)
	case consts.FormatAVIF:
		ep := govips.NewAvifExportParams()
		ep.Quality = p.Quality
		ep.StripMetadata = true
		buf, _, err := ref.ExportAvif(ep)
		return buf, errs.Wrap(errs.KindCompression, "codec.export.avif", err)
	default:
		return nil, errs.Newf(errs.KindCompression, "codec.export", "unsupported format %q", p.Format)
	}
}

func imageTypeName(t govips.ImageType) string {
	switch t {
	case govips.ImageTypeJPEG:
		return "jpeg"
	case govips.ImageTypePNG:
		return "png"
	case govips.ImageTypeWEBP:
		return "webp"
	case govips.ImageTypeAVIF:
		return "avif"
	case govips.ImageTypeGIF:
		return "gif"
	case govips.ImageTypeTIFF:
		return "tiff"
	case govips.ImageTypeBMP:
		return "bmp"
	case govips.ImageTypeHEIF:
		return "heif"
	default:
		return fmt.Sprintf("unknown(%d)", t)
	}
}
