package httpserver

import (
	"context"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/groceryhub/grocery-backend/internal/repo"
	"github.com/groceryhub/grocery-backend/pkg/logging"
)

// EventPublisher is satisfied by mykafka.Producer. Handlers treat a nil
// publisher as "events disabled".
type EventPublisher interface {
	PublishEvent(ctx context.Context, topic, key string, event interface{}) error
}

// ProductIndexer is satisfied by es.Indexer. Nil disables indexing.
type ProductIndexer interface {
	IndexProduct(ctx context.Context, p *repo.ProductWithUnit) error
	DeleteProduct(ctx context.Context, productID int64) error
}

func publish(c echo.Context, p EventPublisher, topic string, event map[string]any) {
	if p == nil {
		return
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	if err := p.PublishEvent(ctx, topic, "", event); err != nil {
		logging.FromContext(c.Request().Context()).Error("kafka publish failed", "topic", topic, "error", err)
	}
}
