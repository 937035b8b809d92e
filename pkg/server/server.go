package server

import (
	"net/http"

	grpchealth "github.com/bufbuild/connect-grpchealth-go"
	grpcreflect "github.com/bufbuild/connect-grpcreflect-go"
	"github.com/rs/cors"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"
)

const ServiceName = "whiskyshelf.v1.CollectionService"

// NewHandler mounts the collection routes behind the auth middleware next to the health
// and reflection handlers, and wraps everything in CORS and h2c.
func NewHandler(collection *CollectionServer, authenticate func(http.Handler) http.Handler) http.Handler {
	mux := http.NewServeMux()
	collection.Register(mux, authenticate)

	reflector := grpcreflect.NewStaticReflector(grpchealth.HealthV1ServiceName, ServiceName)
	checker := grpchealth.NewStaticChecker(ServiceName)
	mux.Handle(grpchealth.NewHandler(checker))
	mux.Handle(grpcreflect.NewHandlerV1(reflector))
	mux.Handle(grpcreflect.NewHandlerV1Alpha(reflector))

	return h2c.NewHandler(configureCORS(mux), &http2.Server{})
}

func configureCORS(mux *http.ServeMux) http.Handler {
	corsOpts := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "HEAD", "PATCH"},
		AllowedHeaders: []string{
			"accept",
			"accept-encoding",
			"accept-language",
			"authorization",
			"cache-control",
			"connect-protocol-version",
			"connect-timeout-ms",
			"content-encoding",
			"content-length",
			"content-type",
			"date",
			"grpc-timeout",
			"keep-alive",
			"origin",
			"referer",
			"user-agent",
		},
		ExposedHeaders: []string{
			"content-disposition",
			"connect-protocol-version",
			"grpc-message",
			"grpc-status",
		},
		MaxAge:             86400, // 24 hours
		OptionsPassthrough: false,
	})

	return corsOpts.Handler(mux)
}
