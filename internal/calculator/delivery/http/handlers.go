package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Calculate godoc
// @Summary     Perform an arithmetic operation
// @Description Applies +, -, * or / to two numbers. Division by zero is rejected with 400.
// @Tags        Calculator
// @Accept      json
// @Produce     json
// @Param       body body calculateReq true "Operands and operator"
// @Success     200 {object} calculateResp
// @Failure     400 {object} errorResp
// @Failure     422 {object} errorResp
// @Router      /calculate [POST]
func (h *handler) Calculate(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCalculateReq(c)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, errorResp{Detail: detailInvalidBody})
		return
	}

	result, err := h.uc.Calculate(ctx, *req.Num1, req.Operator, *req.Num2)
	if err != nil {
		status, detail := h.mapError(err)
		if status >= http.StatusInternalServerError {
			h.l.Errorf(ctx, "internal.calculator.delivery.http.Calculate: %v", err)
		}
		c.JSON(status, errorResp{Detail: detail})
		return
	}

	c.JSON(http.StatusOK, calculateResp{Result: result})
}
