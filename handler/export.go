package handler

import (
	"fmt"
	"strconv"
	"time"

	"railway_booking/constants"
	"railway_booking/database"
	"railway_booking/utils"

	"github.com/gofiber/fiber/v2"
)

func sendCSV(c *fiber.Ctx, filename string, header []string, rows [][]string) error {
	data, err := utils.WriteCSV(header, rows)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	c.Set("Content-Type", "text/csv")
	c.Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(data)
}

// ExportBookings dumps every booking joined with its schedule and owner. The
// header row mirrors the SELECT projection.
func ExportBookings(c *fiber.Ctx) error {
	type bookingRow struct {
		PNR           string
		Email         string
		TrainNumber   string
		Source        string
		Destination   string
		DepartureDate string
		SeatClass     string
		Passengers    int64
		TotalFare     float64
		Status        string
		PaymentMethod string
		CreatedAt     time.Time
	}

	var rows []bookingRow
	query := `
SELECT
    b.pnr,
    u.email,
    t.number AS train_number,
    s.source,
    s.destination,
    s.departure_date,
    b.seat_class,
    (SELECT COUNT(*) FROM passengers p WHERE p.booking_id = b.id) AS passengers,
    b.total_fare,
    b.status,
    b.payment_method,
    b.created_at
FROM bookings b
JOIN users u ON u.id = b.user_id
JOIN schedules s ON s.id = b.schedule_id
JOIN trains t ON t.id = s.train_id
ORDER BY b.created_at DESC
`
	if err := database.DB.Raw(query).Scan(&rows).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	header := []string{"pnr", "email", "train_number", "source", "destination",
		"departure_date", "seat_class", "passengers", "total_fare", "status",
		"payment_method", "created_at"}
	records := make([][]string, 0, len(rows))
	for _, r := range rows {
		records = append(records, []string{
			r.PNR, r.Email, r.TrainNumber, r.Source, r.Destination,
			r.DepartureDate, r.SeatClass,
			strconv.FormatInt(r.Passengers, 10),
			strconv.FormatFloat(r.TotalFare, 'f', 2, 64),
			r.Status, r.PaymentMethod,
			r.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}

	return sendCSV(c, "bookings.csv", header, records)
}

func ExportPassengers(c *fiber.Ctx) error {
	type passengerRow struct {
		PNR       string
		Name      string
		Age       int
		Gender    string
		SeatClass string
		Source    string
		Destination string
		DepartureDate string
	}

	var rows []passengerRow
	query := `
SELECT
    b.pnr,
    p.name,
    p.age,
    p.gender,
    p.seat_class,
    s.source,
    s.destination,
    s.departure_date
FROM passengers p
JOIN bookings b ON b.id = p.booking_id
JOIN schedules s ON s.id = b.schedule_id
ORDER BY b.created_at DESC, p.id
`
	if err := database.DB.Raw(query).Scan(&rows).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	header := []string{"pnr", "name", "age", "gender", "seat_class", "source",
		"destination", "departure_date"}
	records := make([][]string, 0, len(rows))
	for _, r := range rows {
		records = append(records, []string{
			r.PNR, r.Name, strconv.Itoa(r.Age), r.Gender, r.SeatClass,
			r.Source, r.Destination, r.DepartureDate,
		})
	}

	return sendCSV(c, "passengers.csv", header, records)
}

func ExportRevenue(c *fiber.Ctx) error {
	type revenueRow struct {
		Date     string
		Bookings int64
		Revenue  float64
	}

	var rows []revenueRow
	query := `
SELECT
    DATE_FORMAT(created_at, '%Y-%m-%d') AS date,
    COUNT(*) AS bookings,
    COALESCE(SUM(total_fare), 0) AS revenue
FROM bookings
WHERE status = 'confirmed'
GROUP BY DATE(created_at)
ORDER BY DATE(created_at)
`
	if err := database.DB.Raw(query).Scan(&rows).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	header := []string{"date", "bookings", "revenue"}
	records := make([][]string, 0, len(rows))
	for _, r := range rows {
		records = append(records, []string{
			r.Date,
			strconv.FormatInt(r.Bookings, 10),
			strconv.FormatFloat(r.Revenue, 'f', 2, 64),
		})
	}

	return sendCSV(c, "revenue.csv", header, records)
}
