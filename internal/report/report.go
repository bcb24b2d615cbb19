package report

import (
	"listcmp/internal/classify"
	"listcmp/internal/compare"
	"listcmp/internal/model"
	"listcmp/internal/order"
)

// Options controls how a Report is built.
type Options struct {
	Normalizer compare.Normalizer
	Sort       order.SortMode
	// Classifier defaults to the built-in keyword table when nil.
	Classifier *classify.Classifier
}

// ListReport is one list's comparison result plus its ordered unique items.
type ListReport struct {
	model.ComparisonResult
	View order.View `json:"view"`
}

// Report is the complete output of one compare run.
type Report struct {
	Sort    order.SortMode        `json:"sort"`
	Results []ListReport          `json:"results"`
	Stats   model.ComparisonStats `json:"stats"`
	Shared  order.View            `json:"shared"`
}

// Build compares lists from scratch and orders every result set for display.
func Build(lists []model.List, opts Options) Report {
	mode := opts.Sort
	if mode == "" {
		mode = order.SortNone
	}
	results, stats := compare.Run(lists, opts.Normalizer)

	r := Report{
		Sort:    mode,
		Results: make([]ListReport, 0, len(results)),
		Stats:   stats,
		Shared:  order.Order(stats.SharedQuestionsList, mode, opts.Classifier),
	}
	for _, res := range results {
		r.Results = append(r.Results, ListReport{
			ComparisonResult: res,
			View:             order.Order(res.UniqueQuestions, mode, opts.Classifier),
		})
	}
	return r
}
