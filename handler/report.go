package handler

import (
	"time"

	"railway_booking/constants"
	"railway_booking/database"
	"railway_booking/utils"

	"github.com/gofiber/fiber/v2"
)

type dashboardKPI struct {
	TotalRevenue     float64 `json:"totalRevenue"`
	TotalBookings    int64   `json:"totalBookings"`
	TotalPassengers  int64   `json:"totalPassengers"`
	CancelledCount   int64   `json:"cancelledCount"`
	CancellationRate float64 `json:"cancellationRate"`
	TodayRevenue     float64 `json:"todayRevenue"`
	RevenueChangePct float64 `json:"revenueChangePct"`
}

type dailyRevenueItem struct {
	Date     string  `json:"date"`
	Revenue  float64 `json:"revenue"`
	Bookings int64   `json:"bookings"`
}

type trainRevenueItem struct {
	TrainNumber string  `json:"trainNumber"`
	TrainName   string  `json:"trainName"`
	Revenue     float64 `json:"revenue"`
	Bookings    int64   `json:"bookings"`
	Passengers  int64   `json:"passengers"`
}

type routeItem struct {
	Source      string  `json:"source"`
	Destination string  `json:"destination"`
	Bookings    int64   `json:"bookings"`
	Revenue     float64 `json:"revenue"`
}

// GetDashboard aggregates revenue and booking KPIs with raw SQL.
func GetDashboard(c *fiber.Ctx) error {
	db := database.DB

	var kpi dashboardKPI
	kpiQuery := `
SELECT
    COALESCE(SUM(CASE WHEN status = 'confirmed' THEN total_fare ELSE 0 END), 0) AS total_revenue,
    COUNT(*) AS total_bookings,
    SUM(CASE WHEN status = 'cancelled' THEN 1 ELSE 0 END) AS cancelled_count,
    (SELECT COUNT(*) FROM passengers p
       JOIN bookings b ON b.id = p.booking_id
      WHERE b.status = 'confirmed') AS total_passengers
FROM bookings
`
	if err := db.Raw(kpiQuery).Scan(&kpi).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if kpi.TotalBookings > 0 {
		kpi.CancellationRate = float64(kpi.CancelledCount) / float64(kpi.TotalBookings) * 100
	}

	today := time.Now().Format("2006-01-02")
	yesterday := time.Now().AddDate(0, 0, -1).Format("2006-01-02")

	var todayRevenue, yesterdayRevenue float64
	db.Raw(`SELECT COALESCE(SUM(total_fare), 0) FROM bookings WHERE status = 'confirmed' AND DATE(created_at) = ?`, today).Scan(&todayRevenue)
	db.Raw(`SELECT COALESCE(SUM(total_fare), 0) FROM bookings WHERE status = 'confirmed' AND DATE(created_at) = ?`, yesterday).Scan(&yesterdayRevenue)
	kpi.TodayRevenue = todayRevenue
	kpi.RevenueChangePct = utils.CalculateGrowth(todayRevenue, yesterdayRevenue)

	var daily []dailyRevenueItem
	dailyQuery := `
SELECT
    DATE_FORMAT(created_at, '%Y-%m-%d') AS date,
    COALESCE(SUM(total_fare), 0) AS revenue,
    COUNT(*) AS bookings
FROM bookings
WHERE status = 'confirmed'
  AND created_at >= DATE_SUB(CURDATE(), INTERVAL 30 DAY)
GROUP BY DATE(created_at)
ORDER BY DATE(created_at)
`
	if err := db.Raw(dailyQuery).Scan(&daily).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	var byTrain []trainRevenueItem
	trainQuery := `
SELECT
    t.number AS train_number,
    t.name AS train_name,
    COALESCE(SUM(b.total_fare), 0) AS revenue,
    COUNT(DISTINCT b.id) AS bookings,
    COUNT(p.id) AS passengers
FROM trains t
JOIN schedules s ON s.train_id = t.id
JOIN bookings b ON b.schedule_id = s.id AND b.status = 'confirmed'
LEFT JOIN passengers p ON p.booking_id = b.id
GROUP BY t.id, t.number, t.name
ORDER BY revenue DESC
LIMIT 10
`
	if err := db.Raw(trainQuery).Scan(&byTrain).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	var topRoutes []routeItem
	routeQuery := `
SELECT
    s.source,
    s.destination,
    COUNT(b.id) AS bookings,
    COALESCE(SUM(b.total_fare), 0) AS revenue
FROM schedules s
JOIN bookings b ON b.schedule_id = s.id AND b.status = 'confirmed'
GROUP BY s.source, s.destination
ORDER BY bookings DESC
LIMIT 10
`
	if err := db.Raw(routeQuery).Scan(&topRoutes).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"kpi":            kpi,
		"dailyRevenue":   daily,
		"revenueByTrain": byTrain,
		"topRoutes":      topRoutes,
	})
}
