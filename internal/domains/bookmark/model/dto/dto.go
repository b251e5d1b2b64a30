package dto

type GetBookmarksResponse struct {
	CafeIDs   []string `json:"cafe_ids"`
	TotalData int      `json:"total_data"`
}

type ContainsResponse struct {
	CafeID     string `json:"cafe_id"`
	Bookmarked bool   `json:"bookmarked"`
}
