package controller

import (
	"log"
	"math"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"teampulse/models"
	"teampulse/utils"
)

type StatsController struct {
	DB     *gorm.DB
	Logger *log.Logger
}

func NewStatsController(db *gorm.DB, logger *log.Logger) *StatsController {
	return &StatsController{
		DB:     db,
		Logger: logger,
	}
}

type ManagerStats struct {
	TotalFeedback    int64 `json:"total_feedback"`
	PositiveFeedback int64 `json:"positive_feedback"`
	NeutralFeedback  int64 `json:"neutral_feedback"`
	NegativeFeedback int64 `json:"negative_feedback"`
}

type EmployeeStats struct {
	TotalFeedback          int64   `json:"total_feedback"`
	AcknowledgedFeedback   int64   `json:"acknowledged_feedback"`
	PendingAcknowledgement int64   `json:"pending_acknowledgement"`
	AcknowledgementRate    float64 `json:"acknowledgement_rate"`
}

// GetManagerStats counts the feedback a manager authored, total and per
// sentiment.
func (sc *StatsController) GetManagerStats(c *fiber.Ctx) error {
	managerID := utils.ParseUint(c.Params("managerID"))

	var stats ManagerStats
	if err := sc.DB.Model(&models.Feedback{}).
		Where("manager_id = ?", managerID).
		Count(&stats.TotalFeedback).Error; err != nil {
		return utils.InternalError(c, "Failed to fetch manager stats", err)
	}

	sentiments := map[string]*int64{
		models.SentimentPositive: &stats.PositiveFeedback,
		models.SentimentNeutral:  &stats.NeutralFeedback,
		models.SentimentNegative: &stats.NegativeFeedback,
	}
	for sentiment, count := range sentiments {
		if err := sc.DB.Model(&models.Feedback{}).
			Where("manager_id = ? AND sentiment = ?", managerID, sentiment).
			Count(count).Error; err != nil {
			return utils.InternalError(c, "Failed to fetch manager stats", err)
		}
	}

	return c.JSON(utils.SuccessResponse(stats))
}

// GetEmployeeStats reports how much of an employee's feedback has been
// acknowledged. Acknowledged counts distinct feedback ids, so repeated
// acknowledgements of one entry cannot push the rate past 100.
func (sc *StatsController) GetEmployeeStats(c *fiber.Ctx) error {
	employeeID := utils.ParseUint(c.Params("employeeID"))

	var stats EmployeeStats
	if err := sc.DB.Model(&models.Feedback{}).
		Where("employee_id = ?", employeeID).
		Count(&stats.TotalFeedback).Error; err != nil {
		return utils.InternalError(c, "Failed to fetch employee stats", err)
	}

	if err := sc.DB.Model(&models.Acknowledgement{}).
		Where("employee_id = ?", employeeID).
		Distinct("feedback_id").
		Count(&stats.AcknowledgedFeedback).Error; err != nil {
		return utils.InternalError(c, "Failed to fetch employee stats", err)
	}

	stats.PendingAcknowledgement = stats.TotalFeedback - stats.AcknowledgedFeedback
	if stats.TotalFeedback > 0 {
		rate := float64(stats.AcknowledgedFeedback) / float64(stats.TotalFeedback) * 100
		stats.AcknowledgementRate = math.Round(rate*100) / 100
	}

	return c.JSON(utils.SuccessResponse(stats))
}
