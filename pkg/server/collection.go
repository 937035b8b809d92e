package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.openly.dev/pointy"
	"go.uber.org/zap"

	"droscher.com/WhiskyShelf/configs"
	"droscher.com/WhiskyShelf/pkg/auth"
	"droscher.com/WhiskyShelf/pkg/backup"
	"droscher.com/WhiskyShelf/pkg/formats"
	"droscher.com/WhiskyShelf/pkg/model"
	"droscher.com/WhiskyShelf/pkg/repository"
)

var ErrInvalidInput = errors.New("bad request")

type Exporter interface {
	Export(ctx context.Context, account uint, format formats.Format) ([]byte, error)
}

type Importer interface {
	Import(ctx context.Context, data []byte, format formats.Format, account uint, options backup.Options) (*backup.Summary, error)
}

type CollectionServer struct {
	exporter    Exporter
	importer    Importer
	repository  repository.CollectionRepository
	logger      *zap.Logger
	maxUpload   int64
	callTimeout time.Duration
	now         func() time.Time
}

func NewCollectionServer(exporter Exporter, importer Importer, repo repository.CollectionRepository, logger *zap.Logger, conf *configs.Config) *CollectionServer {
	return &CollectionServer{
		exporter:    exporter,
		importer:    importer,
		repository:  repo,
		logger:      logger,
		maxUpload:   conf.Server.MaxUploadBytes,
		callTimeout: conf.Import.CallTimeout,
		now:         time.Now,
	}
}

func (c *CollectionServer) Register(mux *http.ServeMux, authenticate func(http.Handler) http.Handler) {
	mux.Handle("GET /v1/export", authenticate(http.HandlerFunc(c.Export)))
	mux.Handle("POST /v1/import", authenticate(http.HandlerFunc(c.Import)))
	mux.Handle("GET /v1/stats", authenticate(http.HandlerFunc(c.Stats)))
	mux.Handle("POST /v1/brands", authenticate(http.HandlerFunc(c.AddBrand)))
	mux.Handle("POST /v1/tastings", authenticate(http.HandlerFunc(c.AddTasting)))
	mux.Handle("POST /v1/wishlist/{id}/purchase", authenticate(http.HandlerFunc(c.PurchaseWishlistItem)))
}

// Export streams the caller's collection as a file download.
func (c *CollectionServer) Export(writer http.ResponseWriter, request *http.Request) {
	user, found := auth.UserFromContext(request.Context())
	if !found {
		writeError(writer, http.StatusUnauthorized, auth.ErrUnauthenticated)

		return
	}

	format, err := formats.ParseFormat(valueOr(request.URL.Query().Get("format"), string(formats.JSON)))
	if err != nil {
		writeError(writer, http.StatusBadRequest, err)

		return
	}

	data, err := c.exporter.Export(request.Context(), user.ID, format)
	if err != nil {
		c.logger.Error("export failed", zap.Uint("user_id", user.ID), zap.Error(err))
		writeError(writer, statusFor(err), err)

		return
	}

	codec, err := formats.For(format)
	if err != nil {
		writeError(writer, http.StatusBadRequest, err)

		return
	}

	filename := fmt.Sprintf("whisky-collection-%s.%s", c.now().UTC().Format(time.DateOnly), codec.Extension())

	writer.Header().Set("Content-Type", codec.ContentType())
	writer.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	writer.Header().Set("Content-Length", strconv.Itoa(len(data)))
	writer.WriteHeader(http.StatusOK)
	_, _ = writer.Write(data)
}

// Import reconciles the uploaded file with the caller's collection and reports the summary.
// A summary with conflicts or unresolved references is answered with 207.
func (c *CollectionServer) Import(writer http.ResponseWriter, request *http.Request) {
	user, found := auth.UserFromContext(request.Context())
	if !found {
		writeError(writer, http.StatusUnauthorized, auth.ErrUnauthenticated)

		return
	}

	query := request.URL.Query()

	format, err := importFormat(query.Get("format"), query.Get("filename"))
	if err != nil {
		writeError(writer, http.StatusBadRequest, err)

		return
	}

	options, err := importOptions(query, c.callTimeout)
	if err != nil {
		writeError(writer, http.StatusBadRequest, err)

		return
	}

	data, err := io.ReadAll(http.MaxBytesReader(writer, request.Body, c.maxUpload))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(writer, http.StatusRequestEntityTooLarge, err)

			return
		}

		writeError(writer, http.StatusBadRequest, err)

		return
	}

	summary, err := c.importer.Import(request.Context(), data, format, user.ID, options)
	if err != nil {
		var phaseErr *backup.PhaseError
		if errors.As(err, &phaseErr) {
			c.logger.Error("import aborted", zap.Uint("user_id", user.ID), zap.Error(err))
			writeJSON(writer, http.StatusBadGateway, importResponse{Error: err.Error(), Summary: phaseErr.Summary})

			return
		}

		writeError(writer, statusFor(err), err)

		return
	}

	status := http.StatusOK
	if summary.Partial() {
		status = http.StatusMultiStatus
	}

	writeJSON(writer, status, importResponse{Summary: summary})
}

func (c *CollectionServer) Stats(writer http.ResponseWriter, request *http.Request) {
	user, found := auth.UserFromContext(request.Context())
	if !found {
		writeError(writer, http.StatusUnauthorized, auth.ErrUnauthenticated)

		return
	}

	stats, err := c.repository.GetCollectionStats(request.Context(), user.ID)
	if err != nil {
		c.logger.Error("failed to compute collection stats", zap.Uint("user_id", user.ID), zap.Error(err))
		writeError(writer, http.StatusInternalServerError, err)

		return
	}

	writeJSON(writer, http.StatusOK, stats)
}

func (c *CollectionServer) AddBrand(writer http.ResponseWriter, request *http.Request) {
	user, found := auth.UserFromContext(request.Context())
	if !found {
		writeError(writer, http.StatusUnauthorized, auth.ErrUnauthenticated)

		return
	}

	var body brandRequest
	if err := decodeBody(request, &body); err != nil {
		writeError(writer, http.StatusBadRequest, err)

		return
	}

	if strings.TrimSpace(body.Name) == "" {
		writeError(writer, http.StatusBadRequest, fmt.Errorf("%w: brand name is required", ErrInvalidInput))

		return
	}

	brand, err := c.repository.AddBrand(request.Context(), model.Brand{
		Name:        body.Name,
		Country:     body.Country,
		Region:      body.Region,
		Description: body.Description,
		OwnerID:     pointy.Uint(user.ID),
	})
	if err != nil {
		writeError(writer, statusFor(err), err)

		return
	}

	writeJSON(writer, http.StatusCreated, brand)
}

func (c *CollectionServer) AddTasting(writer http.ResponseWriter, request *http.Request) {
	user, found := auth.UserFromContext(request.Context())
	if !found {
		writeError(writer, http.StatusUnauthorized, auth.ErrUnauthenticated)

		return
	}

	var body tastingRequest
	if err := decodeBody(request, &body); err != nil {
		writeError(writer, http.StatusBadRequest, err)

		return
	}

	if err := body.validate(); err != nil {
		writeError(writer, http.StatusBadRequest, err)

		return
	}

	tasting, err := c.repository.AddTasting(request.Context(), body.toModel(user.ID))
	if err != nil {
		writeError(writer, statusFor(err), err)

		return
	}

	writeJSON(writer, http.StatusCreated, tasting)
}

func (c *CollectionServer) PurchaseWishlistItem(writer http.ResponseWriter, request *http.Request) {
	user, found := auth.UserFromContext(request.Context())
	if !found {
		writeError(writer, http.StatusUnauthorized, auth.ErrUnauthenticated)

		return
	}

	itemID, err := strconv.ParseUint(request.PathValue("id"), 10, 64)
	if err != nil {
		writeError(writer, http.StatusBadRequest, fmt.Errorf("%w: invalid wishlist item id", ErrInvalidInput))

		return
	}

	var body purchaseRequest
	if err := decodeBody(request, &body); err != nil {
		writeError(writer, http.StatusBadRequest, err)

		return
	}

	bottle, err := c.repository.PurchaseWishlistItem(request.Context(), user.ID, uint(itemID), model.Purchase{
		Price:    body.Price,
		Location: body.Location,
		Date:     body.Date,
		Volume:   body.Volume,
	})
	if err != nil {
		writeError(writer, statusFor(err), err)

		return
	}

	writeJSON(writer, http.StatusCreated, bottle)
}

func importFormat(format string, filename string) (formats.Format, error) {
	if format != "" {
		return formats.ParseFormat(format)
	}

	if filename != "" {
		return formats.Detect(filename)
	}

	return formats.JSON, nil
}

func importOptions(query url.Values, callTimeout time.Duration) (backup.Options, error) {
	options := backup.Options{CallTimeout: callTimeout}
	targets := map[string]*backup.Strategy{
		"brands":   &options.Brands,
		"bottles":  &options.Bottles,
		"tastings": &options.Tastings,
		"wishlist": &options.Wishlist,
	}

	for name, target := range targets {
		strategy, err := backup.ParseStrategy(query.Get(name))
		if err != nil {
			return options, err
		}

		*target = strategy
	}

	return options, nil
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, ErrInvalidInput), errors.Is(err, backup.ErrParse), errors.Is(err, backup.ErrValidation),
		errors.Is(err, formats.ErrUnsupportedFormat):
		return http.StatusBadRequest
	case errors.Is(err, backup.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, repository.ErrBottleNotFound), errors.Is(err, repository.ErrWishlistItemNotFound):
		return http.StatusNotFound
	case errors.Is(err, backup.ErrExternalService):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func valueOr(value string, fallback string) string {
	if value == "" {
		return fallback
	}

	return value
}
