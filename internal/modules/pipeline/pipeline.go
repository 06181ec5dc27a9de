package pipeline

import (
	"bytes"
	"context"
	"math"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/google/uuid"
	"github.com/pixelpress/pixelpress/internal/modules/auth"
	"github.com/pixelpress/pixelpress/internal/modules/codec"
	"github.com/pixelpress/pixelpress/internal/modules/dao"
	"github.com/pixelpress/pixelpress/internal/modules/errs"
	"github.com/pixelpress/pixelpress/internal/modules/logs"
	"github.com/pixelpress/pixelpress/internal/modules/model"
	"github.com/pixelpress/pixelpress/internal/modules/params"
	"github.com/pixelpress/pixelpress/internal/modules/queue"
	"github.com/pixelpress/pixelpress/internal/modules/storage"
	"github.com/pixelpress/pixelpress/tools"
)

const thumbnailEdge = 256

type Dimensions struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

type Result struct {
	RecordId         int        `json:"recordId,omitempty"`
	Filename         string     `json:"filename"`
	OriginalSize     int64      `json:"originalSize"`
	CompressedSize   int64      `json:"compressedSize"`
	CompressionRatio float64    `json:"compressionRatio"`
	Savings          string     `json:"savings"`
	DownloadURL      string     `json:"downloadUrl"`
	Format           string     `json:"format"`
	Quality          int        `json:"quality"`
	Original         Dimensions `json:"originalDimensions"`
	Compressed       Dimensions `json:"compressedDimensions"`
}

// Pipeline runs decode, resize, encode and bookkeeping for one upload. Codec
// work is CPU-bound, so concurrent runs are bounded by a semaphore.
type Pipeline struct {
	store storage.Store
	sem   chan struct{}
}

func New(store storage.Store, maxConcurrent int) *Pipeline {
	if maxConcurrent <= 0 {
		maxConcurrent = runtime.NumCPU()
	}
	return &Pipeline{
		store: store,
		sem:   make(chan struct{}, maxConcurrent),
	}
}

// Compress transcodes data per prm. When identity is non-nil the run is
// recorded against that user; anonymous runs persist nothing.
func (p *Pipeline) Compress(ctx context.Context, originalName string, data []byte, prm params.CompressionParams, identity *auth.Identity) (Result, error) {
	select {
	case p.sem <- struct{}{}:
		defer func() { <-p.sem }()
	case <-ctx.Done():
		return Result{}, errs.Wrap(errs.KindInternal, "pipeline.compress", ctx.Err())
	}

	meta, err := codec.Probe(data)
	if err != nil {
		return Result{}, err
	}

	transcoded, err := codec.Transcode(data, prm)
	if err != nil {
		return Result{}, err
	}

	originalSize := int64(len(data))
	compressedSize := int64(len(transcoded.Data))
	ratio := Ratio(originalSize, compressedSize)

	filename := uuid.New().String() + prm.Format.Extension()
	err = p.store.Save(filename, bytes.NewReader(transcoded.Data))
	if err != nil {
		return Result{}, errs.Wrap(errs.KindInternal, "pipeline.store", err)
	}
	downloadURL, err := p.store.URL(filename)
	if err != nil {
		return Result{}, errs.Wrap(errs.KindInternal, "pipeline.url", err)
	}

	result := Result{
		Filename:         filename,
		OriginalSize:     originalSize,
		CompressedSize:   compressedSize,
		CompressionRatio: ratio,
		Savings:          tools.HumanSize(originalSize-compressedSize) + " saved",
		DownloadURL:      downloadURL,
		Format:           prm.Format.String(),
		Quality:          prm.Quality,
		Original:         Dimensions{Width: meta.Width, Height: meta.Height},
		Compressed:       Dimensions{Width: transcoded.Width, Height: transcoded.Height},
	}

	if identity != nil {
		record := model.CompressionRecord{
			UserId:              identity.UserId,
			OriginalName:        originalName,
			CompressedName:      filename,
			OriginalSize:        originalSize,
			CompressedSize:      compressedSize,
			CompressionRatio:    ratio,
			Format:              prm.Format.String(),
			Quality:             prm.Quality,
			OriginalWidth:       meta.Width,
			OriginalHeight:      meta.Height,
			CompressedWidth:     transcoded.Width,
			CompressedHeight:    transcoded.Height,
			StorageSupplierName: p.store.Supplier(),
			ThumbnailName:       ThumbName(filename),
		}
		err = dao.CreateRecord(&record)
		if err != nil {
			// Without persistence the compression itself still succeeded.
			if errs.Is(err, errs.KindUnavailable) {
				logs.Logger.Warn().Msg("database unavailable, compression not recorded")
				return result, nil
			}
			return Result{}, err
		}
		result.RecordId = record.Id

		// Counter bump is best-effort and not atomic with the record write.
		err = dao.BumpCounters(identity.UserId, originalSize-compressedSize)
		if err != nil {
			logs.Logger.Err(err).Int("user_id", identity.UserId).Msg("counter bump failed")
		}

		queue.Enqueue(&thumbnailTask{
			store:    p.store,
			name:     ThumbName(filename),
			original: data,
		})
	}

	return result, nil
}

// Ratio is the percentage saved, two-decimal precision. Negative when the
// output grew.
func Ratio(originalSize, compressedSize int64) float64 {
	if originalSize <= 0 {
		return 0
	}
	raw := float64(originalSize-compressedSize) / float64(originalSize) * 100
	return math.Round(raw*100) / 100
}

// ThumbName derives the preview filename stored next to an artifact.
func ThumbName(filename string) string {
	return strings.TrimSuffix(filename, filepath.Ext(filename)) + "_thumb.jpg"
}

type thumbnailTask struct {
	store    storage.Store
	name     string
	original []byte
}

func (t *thumbnailTask) Execute(_ context.Context) error {
	thumb, err := tools.Thumbnail(t.original, thumbnailEdge, 85)
	if err != nil {
		// Previews for undecodable inputs are simply skipped.
		logs.Logger.Debug().Err(err).Str("name", t.name).Msg("thumbnail skipped")
		return nil
	}
	return t.store.Save(t.name, bytes.NewReader(thumb))
}

// ArtifactDeleteTask removes an artifact and its thumbnail in the background.
type ArtifactDeleteTask struct {
	Store     storage.Store
	Filename  string
	Thumbnail string
}

func (t *ArtifactDeleteTask) Execute(_ context.Context) error {
	if t.Store.Exists(t.Filename) {
		if err := t.Store.Delete(t.Filename); err != nil {
			return err
		}
	}
	if t.Thumbnail != "" && t.Store.Exists(t.Thumbnail) {
		return t.Store.Delete(t.Thumbnail)
	}
	return nil
}
