package middleware

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/junction-ui/junction/pkg/router"
)

// Default tracer name for Junction applications.
const defaultTracerName = "junction"

// OTelConfig configures the OpenTelemetry decorator.
type OTelConfig struct {
	// TracerName is the name of the tracer (default: "junction").
	TracerName string

	// BaseContext is the parent context for navigation spans. Defaults
	// to context.Background(); hosts that carry a request context can
	// supply it here.
	BaseContext context.Context

	// AttributeExtractor extracts custom attributes for each traced
	// navigation, given the target path.
	AttributeExtractor func(path string) []attribute.KeyValue

	// tracer is the resolved tracer instance.
	tracer trace.Tracer
}

// OTelOption configures the OpenTelemetry decorator.
type OTelOption func(*OTelConfig)

// WithTracerName sets the tracer name.
func WithTracerName(name string) OTelOption {
	return func(c *OTelConfig) {
		c.TracerName = name
	}
}

// WithBaseContext sets the parent context for navigation spans.
func WithBaseContext(ctx context.Context) OTelOption {
	return func(c *OTelConfig) {
		c.BaseContext = ctx
	}
}

// WithAttributeExtractor sets a custom attribute extractor.
func WithAttributeExtractor(extractor func(path string) []attribute.KeyValue) OTelOption {
	return func(c *OTelConfig) {
		c.AttributeExtractor = extractor
	}
}

// defaultOTelConfig returns the default OpenTelemetry configuration.
func defaultOTelConfig() OTelConfig {
	return OTelConfig{
		TracerName:  defaultTracerName,
		BaseContext: context.Background(),
	}
}

// TracedNavigator is a Navigator that wraps every navigation call in an
// OpenTelemetry span.
type TracedNavigator struct {
	nav    Navigator
	config OTelConfig
}

// OpenTelemetry wraps nav so every navigation call runs inside a span.
//
// The span is named "nav.<event>" and carries the target path and event
// as attributes. Failed transactions record the error and set the span
// status, with the failure kind as an attribute.
func OpenTelemetry(nav Navigator, opts ...OTelOption) *TracedNavigator {
	config := defaultOTelConfig()
	for _, opt := range opts {
		opt(&config)
	}
	config.tracer = otel.Tracer(config.TracerName)

	return &TracedNavigator{nav: nav, config: config}
}

// trace runs one navigation call inside a span.
func (n *TracedNavigator) trace(event, path string, fn func() error) error {
	attrs := []attribute.KeyValue{
		attribute.String("nav.event", event),
		attribute.String("nav.path", path),
	}
	if n.config.AttributeExtractor != nil {
		attrs = append(attrs, n.config.AttributeExtractor(path)...)
	}

	_, span := n.config.tracer.Start(n.config.BaseContext, "nav."+event,
		trace.WithAttributes(attrs...))
	defer span.End()

	err := fn()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		span.SetAttributes(attribute.String("nav.error_kind", router.KindOf(err).String()))
	}
	return err
}

// Push implements Navigator.
func (n *TracedNavigator) Push(path string) error {
	return n.trace(router.EventPush.String(), path, func() error { return n.nav.Push(path) })
}

// PushState implements Navigator.
func (n *TracedNavigator) PushState(path string, state any) error {
	return n.trace(router.EventPush.String(), path, func() error { return n.nav.PushState(path, state) })
}

// Replace implements Navigator.
func (n *TracedNavigator) Replace(path string) error {
	return n.trace(router.EventReplace.String(), path, func() error { return n.nav.Replace(path) })
}

// Back implements Navigator.
func (n *TracedNavigator) Back() error {
	return n.trace(router.EventBack.String(), "", func() error { return n.nav.Back() })
}

// Forward implements Navigator.
func (n *TracedNavigator) Forward() error {
	return n.trace(router.EventForward.String(), "", func() error { return n.nav.Forward() })
}

// HandleDeepLink implements Navigator.
func (n *TracedNavigator) HandleDeepLink(url string) error {
	return n.trace(router.EventDeepLink.String(), url, func() error { return n.nav.HandleDeepLink(url) })
}
