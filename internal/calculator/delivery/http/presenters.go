package http

// Request and response bodies follow the calculator service wire format
// consumed by pkg/calculator, not the response.Resp envelope.

type calculateReq struct {
	Num1     *float64 `json:"num1"     binding:"required"`
	Operator string   `json:"operator" binding:"required"`
	Num2     *float64 `json:"num2"     binding:"required"`
}

type calculateResp struct {
	Result float64 `json:"result"`
}

type errorResp struct {
	Detail string `json:"detail"`
}
