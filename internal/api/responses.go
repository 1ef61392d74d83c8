package api

type ErrorResponse struct {
	Error string `json:"error" example:"something went wrong"`
}

type HealthResponse struct {
	Status string            `json:"status" example:"ok"`
	Checks map[string]string `json:"checks,omitempty"`
}

func (r *HealthResponse) SetCheck(name, state string) {
	if r.Checks == nil {
		r.Checks = make(map[string]string)
	}
	r.Checks[name] = state
}

// ListResponse always carries a list; Error is set when the list is empty
// because of a failure rather than because there is nothing to show.
type ListResponse[T any] struct {
	Data  []T    `json:"data"`
	Error string `json:"error,omitempty" example:"branch not found"`
}

func NewListResponse[T any](data []T, err error) ListResponse[T] {
	if data == nil {
		data = []T{}
	}
	resp := ListResponse[T]{Data: data}
	if err != nil {
		resp.Error = err.Error()
	}
	return resp
}
