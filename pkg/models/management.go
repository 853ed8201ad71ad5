package models

// ServiceListRequest selects a page of service records. Nil bounds leave
// paging to the remote service's defaults.
type ServiceListRequest struct {
	Start *int
	End   *int
}

// ServiceListResponse is a page of service records.
type ServiceListResponse struct {
	Result

	Start      int       `json:"start"`
	End        int       `json:"end"`
	TotalCount int       `json:"totalCount"`
	Services   []Service `json:"services,omitempty"`
}

// ClientListRequest selects a page of client records, optionally restricted
// to one developer.
type ClientListRequest struct {
	Developer string
	Start     *int
	End       *int
}

// ClientListResponse is a page of client records.
type ClientListResponse struct {
	Result

	Start      int      `json:"start"`
	End        int      `json:"end"`
	TotalCount int      `json:"totalCount"`
	Developer  string   `json:"developer,omitempty"`
	Clients    []Client `json:"clients,omitempty"`
}
