package routes

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"hotel-booking-backend/config"
	"hotel-booking-backend/controllers"
	"hotel-booking-backend/models"
	"hotel-booking-backend/services"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestServer(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:api_%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := config.Migrate(db); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}

	userSvc := services.NewUserService(db)
	bookingSvc := services.NewBookingService(db, services.NewAvailabilityService(db))
	r := SetupRouter(
		db,
		controllers.NewAuthController(userSvc),
		controllers.NewCustomerController(services.NewCustomerService(db)),
		controllers.NewRoomController(services.NewRoomService(db)),
		controllers.NewBookingController(bookingSvc),
		controllers.NewPaymentController(services.NewPaymentService(db)),
		controllers.NewAdminController(services.NewAdminService(db), userSvc),
	)
	return r, db
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode %q: %v", w.Body.String(), err)
	}
	return out
}

func isoDate(daysFromNow int) string {
	return time.Now().UTC().AddDate(0, 0, daysFromNow).Format("2006-01-02")
}

func TestHealth(t *testing.T) {
	r, _ := newTestServer(t)
	w := doJSON(t, r, http.MethodGet, "/health", "", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
}

func TestBookingFlow(t *testing.T) {
	r, db := newTestServer(t)

	// Admin account: registered through the API, promoted directly in the
	// store the way the seeded admin is.
	w := doJSON(t, r, http.MethodPost, "/api/register", "",
		`{"username":"admin","email":"admin@example.com","password":"pw"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("register admin: %d %s", w.Code, w.Body.String())
	}
	adminToken := decode(t, w)["token"].(string)
	if err := db.Model(&models.User{}).Where("username = ?", "admin").Update("is_admin", true).Error; err != nil {
		t.Fatal(err)
	}

	// Customer account.
	w = doJSON(t, r, http.MethodPost, "/api/customer/register", "",
		`{"name":"Alice","email":"alice@example.com","phone":"555-0100"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("register customer: %d %s", w.Code, w.Body.String())
	}
	w = doJSON(t, r, http.MethodPost, "/api/customer/login", "",
		`{"email":"alice@example.com","phone":"555-0100"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("customer login: %d %s", w.Code, w.Body.String())
	}
	customerToken := decode(t, w)["token"].(string)

	// Room creation is admin only.
	roomBody := `{"room_number":"102","type":"double","price":80,"description":"Cozy double"}`
	if w = doJSON(t, r, http.MethodPost, "/api/rooms", customerToken, roomBody); w.Code != http.StatusForbidden {
		t.Fatalf("customer room create: %d, want 403", w.Code)
	}
	w = doJSON(t, r, http.MethodPost, "/api/rooms", adminToken, roomBody)
	if w.Code != http.StatusCreated {
		t.Fatalf("admin room create: %d %s", w.Code, w.Body.String())
	}

	// Rooms are browsable without a token.
	if w = doJSON(t, r, http.MethodGet, "/api/rooms?type=double", "", ""); w.Code != http.StatusOK {
		t.Fatalf("list rooms: %d", w.Code)
	}

	// Book three nights.
	bookingBody := fmt.Sprintf(`{"room_id":1,"check_in":"%s","check_out":"%s"}`, isoDate(10), isoDate(13))
	w = doJSON(t, r, http.MethodPost, "/api/bookings", customerToken, bookingBody)
	if w.Code != http.StatusCreated {
		t.Fatalf("create booking: %d %s", w.Code, w.Body.String())
	}
	booking := decode(t, w)["booking"].(map[string]interface{})
	bookingID := int(booking["id"].(float64))

	// Overlapping request for the same room is rejected.
	overlap := fmt.Sprintf(`{"room_id":1,"check_in":"%s","check_out":"%s"}`, isoDate(11), isoDate(12))
	if w = doJSON(t, r, http.MethodPost, "/api/bookings", customerToken, overlap); w.Code != http.StatusConflict {
		t.Fatalf("overlapping booking: %d, want 409: %s", w.Code, w.Body.String())
	}

	// Unauthenticated booking access is rejected.
	if w = doJSON(t, r, http.MethodGet, "/api/bookings", "", ""); w.Code != http.StatusUnauthorized {
		t.Fatalf("anonymous bookings list: %d, want 401", w.Code)
	}

	// Pay: 80 * 3 nights.
	payPath := fmt.Sprintf("/api/bookings/%d/pay", bookingID)
	w = doJSON(t, r, http.MethodPatch, payPath, customerToken, `{"method":"credit card"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("pay: %d %s", w.Code, w.Body.String())
	}
	payment := decode(t, w)["payment"].(map[string]interface{})
	if amount := payment["amount"].(float64); amount != 240 {
		t.Fatalf("amount = %v, want 240", amount)
	}

	// Second pay succeeds without charging again.
	if w = doJSON(t, r, http.MethodPatch, payPath, customerToken, `{}`); w.Code != http.StatusOK {
		t.Fatalf("repay: %d %s", w.Code, w.Body.String())
	}

	// Paid bookings cannot be cancelled.
	cancelPath := fmt.Sprintf("/api/bookings/%d/cancel", bookingID)
	if w = doJSON(t, r, http.MethodPatch, cancelPath, customerToken, ""); w.Code != http.StatusConflict {
		t.Fatalf("cancel paid booking: %d, want 409: %s", w.Code, w.Body.String())
	}

	// Admin dashboard reflects the activity.
	w = doJSON(t, r, http.MethodGet, "/api/admin/overview", adminToken, "")
	if w.Code != http.StatusOK {
		t.Fatalf("overview: %d %s", w.Code, w.Body.String())
	}
	overview := decode(t, w)
	if overview["total_bookings"].(float64) != 1 || overview["total_revenue"].(float64) != 240 {
		t.Fatalf("overview wrong: %s", w.Body.String())
	}
	if w = doJSON(t, r, http.MethodGet, "/api/admin/overview", customerToken, ""); w.Code != http.StatusForbidden {
		t.Fatalf("customer overview: %d, want 403", w.Code)
	}
}

func TestCancelFlow(t *testing.T) {
	r, db := newTestServer(t)

	w := doJSON(t, r, http.MethodPost, "/api/customer/register", "",
		`{"name":"Bob","email":"bob@example.com","phone":"555-0101"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("register customer: %d %s", w.Code, w.Body.String())
	}
	w = doJSON(t, r, http.MethodPost, "/api/customer/login", "",
		`{"email":"bob@example.com","phone":"555-0101"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("customer login: %d %s", w.Code, w.Body.String())
	}
	customerToken := decode(t, w)["token"].(string)

	// Room seeded straight into the store; creation is covered elsewhere.
	room := models.Room{RoomNumber: "101", Type: models.RoomTypeSingle, Price: 100, Status: models.RoomStatusAvailable}
	if err := db.Create(&room).Error; err != nil {
		t.Fatal(err)
	}

	bookingBody := fmt.Sprintf(`{"room_id":%d,"check_in":"%s","check_out":"%s"}`, room.ID, isoDate(5), isoDate(7))
	w = doJSON(t, r, http.MethodPost, "/api/bookings", customerToken, bookingBody)
	if w.Code != http.StatusCreated {
		t.Fatalf("create booking: %d %s", w.Code, w.Body.String())
	}
	booking := decode(t, w)["booking"].(map[string]interface{})
	bookingID := int(booking["id"].(float64))

	cancelPath := fmt.Sprintf("/api/bookings/%d/cancel", bookingID)
	if w = doJSON(t, r, http.MethodPatch, cancelPath, customerToken, ""); w.Code != http.StatusOK {
		t.Fatalf("cancel: %d %s", w.Code, w.Body.String())
	}
	if w = doJSON(t, r, http.MethodPatch, cancelPath, customerToken, ""); w.Code != http.StatusConflict {
		t.Fatalf("double cancel: %d, want 409", w.Code)
	}

	// The interval is free again.
	if w = doJSON(t, r, http.MethodPost, "/api/bookings", customerToken, bookingBody); w.Code != http.StatusCreated {
		t.Fatalf("rebook after cancel: %d %s", w.Code, w.Body.String())
	}
}
