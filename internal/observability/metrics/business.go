package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Content metrics track the article lifecycle.
var (
	// ArticlesTotal tracks the total number of articles in the store.
	ArticlesTotal = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "articles_total",
			Help: "Total number of articles in the store",
		},
	)

	// ArticleOperationsTotal counts article write operations by operation
	// and result.
	ArticleOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "article_operations_total",
			Help: "Total article write operations by operation and result",
		},
		[]string{"operation", "result"}, // operation: create | patch | delete
	)

	// FieldAccessDenialsTotal counts field-level access denials by field.
	FieldAccessDenialsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "field_access_denials_total",
			Help: "Field-level access denials by field name",
		},
		[]string{"field"},
	)

	// ValidationFailuresTotal counts entity validation failures by field.
	ValidationFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "validation_failures_total",
			Help: "Entity validation failures by field name",
		},
		[]string{"field"},
	)
)

// RecordArticleOperation records the outcome of an article write operation.
// Operation is create, patch, or delete; result is success or failure.
func RecordArticleOperation(operation string, success bool) {
	result := "success"
	if !success {
		result = "failure"
	}
	ArticleOperationsTotal.WithLabelValues(operation, result).Inc()
}

// RecordFieldAccessDenial records a denied field change.
func RecordFieldAccessDenial(field string) {
	FieldAccessDenialsTotal.WithLabelValues(field).Inc()
}

// RecordValidationFailure records a failed entity validation.
func RecordValidationFailure(field string) {
	ValidationFailuresTotal.WithLabelValues(field).Inc()
}

// UpdateArticlesTotal updates the article count gauge. Updated after every
// successful list query, which already knows the total.
func UpdateArticlesTotal(count int64) {
	ArticlesTotal.Set(float64(count))
}
