package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	exceptionRepo "medisys/database/repository/exception"
	scheduleRepo "medisys/database/repository/schedule"
	"medisys/models"
	"medisys/utils"
)

// ScheduleHandler manages the collaborator data the availability engine
// reads: recurring work blocks and date-scoped exceptions.
type ScheduleHandler struct {
	ScheduleRepo  scheduleRepo.ScheduleRepository
	ExceptionRepo exceptionRepo.ExceptionRepository
}

// NewScheduleHandler constructs a ScheduleHandler.
func NewScheduleHandler(schedules scheduleRepo.ScheduleRepository, exceptions exceptionRepo.ExceptionRepository) *ScheduleHandler {
	return &ScheduleHandler{ScheduleRepo: schedules, ExceptionRepo: exceptions}
}

type workBlockInput struct {
	DoctorID     string `json:"doctorId" binding:"required"`
	BranchID     string `json:"branchId" binding:"required"`
	Weekday      int    `json:"weekday" binding:"required"`
	Start        string `json:"start" binding:"required"` // "HH:MM"
	End          string `json:"end" binding:"required"`   // "HH:MM"
	SlotDuration int    `json:"slotDuration" binding:"required"`
}

// CreateWorkBlockHandler handles POST /api/schedule/workblocks.
func (h *ScheduleHandler) CreateWorkBlockHandler(c *gin.Context) {
	var in workBlockInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	start, err := utils.ClockToMinutes(in.Start)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	end, err := utils.ClockToMinutes(in.End)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	block := models.WorkBlock{
		DoctorID:     in.DoctorID,
		BranchID:     in.BranchID,
		Weekday:      in.Weekday,
		Start:        start,
		End:          end,
		SlotDuration: in.SlotDuration,
		Active:       true,
	}
	if !block.Valid() {
		utils.JSONError(c, http.StatusBadRequest, "invalid work block",
			fmt.Sprintf("weekday must be 1-7, start must precede end and slotDuration must be positive; got weekday=%d start=%s end=%s duration=%d",
				in.Weekday, in.Start, in.End, in.SlotDuration))
		return
	}

	if err := h.ScheduleRepo.Create(c.Request.Context(), &block); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to create work block", err.Error())
		return
	}
	c.JSON(http.StatusCreated, block)
}

// ListWorkBlocksHandler handles GET /api/schedule/workblocks/:doctorId.
func (h *ScheduleHandler) ListWorkBlocksHandler(c *gin.Context) {
	blocks, err := h.ScheduleRepo.GetByDoctor(c.Request.Context(), c.Param("doctorId"))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list work blocks", err.Error())
		return
	}
	c.JSON(http.StatusOK, blocks)
}

// DeleteWorkBlockHandler handles DELETE /api/schedule/workblocks/:id.
func (h *ScheduleHandler) DeleteWorkBlockHandler(c *gin.Context) {
	if err := h.ScheduleRepo.DeleteByID(c.Request.Context(), c.Param("id")); err != nil {
		utils.JSONError(c, http.StatusNotFound, "failed to delete work block", err.Error())
		return
	}
	c.Status(http.StatusNoContent)
}

type exceptionInput struct {
	DoctorID string  `json:"doctorId" binding:"required"`
	Date     string  `json:"date" binding:"required"` // "2006-01-02"
	Type     string  `json:"type" binding:"required"`
	Start    *string `json:"start,omitempty"` // "HH:MM", partial_block only
	End      *string `json:"end,omitempty"`   // "HH:MM", partial_block only
	Reason   string  `json:"reason,omitempty"`
}

var knownExceptionTypes = map[models.ExceptionType]struct{}{
	models.ExceptionNonWorkingDay: {},
	models.ExceptionVacation:      {},
	models.ExceptionHoliday:       {},
	models.ExceptionPartialBlock:  {},
}

// CreateExceptionHandler handles POST /api/schedule/exceptions.
func (h *ScheduleHandler) CreateExceptionHandler(c *gin.Context) {
	var in exceptionInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	excType := models.ExceptionType(in.Type)
	if _, ok := knownExceptionTypes[excType]; !ok {
		utils.JSONError(c, http.StatusBadRequest, "invalid exception type", fmt.Sprintf("unknown type %q", in.Type))
		return
	}
	if _, err := time.Parse(utils.DateLayout, in.Date); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", fmt.Sprintf("invalid date %q, expected YYYY-MM-DD", in.Date))
		return
	}

	exc := models.Exception{
		DoctorID: in.DoctorID,
		Date:     in.Date,
		Type:     excType,
		Reason:   in.Reason,
	}
	if in.Start != nil {
		start, err := utils.ClockToMinutes(*in.Start)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
			return
		}
		exc.Start = &start
	}
	if in.End != nil {
		end, err := utils.ClockToMinutes(*in.End)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
			return
		}
		exc.End = &end
	}

	if err := h.ExceptionRepo.Create(c.Request.Context(), &exc); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to create exception", err.Error())
		return
	}
	c.JSON(http.StatusCreated, exc)
}

// ListExceptionsHandler handles GET /api/schedule/exceptions/:doctorId.
func (h *ScheduleHandler) ListExceptionsHandler(c *gin.Context) {
	exceptions, err := h.ExceptionRepo.GetByDoctor(c.Request.Context(), c.Param("doctorId"))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list exceptions", err.Error())
		return
	}
	c.JSON(http.StatusOK, exceptions)
}

// DeleteExceptionHandler handles DELETE /api/schedule/exceptions/:id.
func (h *ScheduleHandler) DeleteExceptionHandler(c *gin.Context) {
	if err := h.ExceptionRepo.DeleteByID(c.Request.Context(), c.Param("id")); err != nil {
		utils.JSONError(c, http.StatusNotFound, "failed to delete exception", err.Error())
		return
	}
	c.Status(http.StatusNoContent)
}
