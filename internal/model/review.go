package model

import "time"

// Review represents a customer review of a product.
type Review struct {
	ID        int64     `json:"id"`
	ProductID string    `json:"productId"`
	UserName  string    `json:"userName"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	Date      time.Time `json:"date"`
}

// ReviewRequest is the payload for submitting a review.
type ReviewRequest struct {
	UserName string `json:"userName"`
	Rating   int    `json:"rating"`
	Comment  string `json:"comment"`
}

// ReviewSummary is the listing returned for a product: reviews newest
// first plus the derived rating aggregate.
type ReviewSummary struct {
	Reviews       []Review `json:"reviews"`
	AverageRating float64  `json:"averageRating"`
	TotalCount    int      `json:"totalCount"`
}
