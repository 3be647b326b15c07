package handlers

import (
	userRepoPkg "travelhub/database/repository/user"
	"travelhub/services/bookingview"
	"travelhub/services/notification"
	"travelhub/services/qualification"
	"travelhub/services/reservation"
	"travelhub/services/workflow"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	UserRepo userRepoPkg.UserRepository

	// Unified booking view endpoints.
	ListProviderBookingsHandler gin.HandlerFunc
	ListCustomerBookingsHandler gin.HandlerFunc
	TransitionBookingHandler    gin.HandlerFunc

	// Reservation creation endpoints.
	CreateReservationHandler gin.HandlerFunc
	CreateTourBookingHandler gin.HandlerFunc
	GetReservationHandler    gin.HandlerFunc

	// Provider qualification endpoints.
	SubmitProviderRequestHandler  gin.HandlerFunc
	GetProviderRequestHandler     gin.HandlerFunc
	ListProviderRequestsHandler   gin.HandlerFunc
	ListMyProviderRequestsHandler gin.HandlerFunc
	ApproveProviderRequestHandler gin.HandlerFunc
	RejectProviderRequestHandler  gin.HandlerFunc

	// Notification feed endpoints.
	ListNotificationsHandler    gin.HandlerFunc
	MarkNotificationReadHandler gin.HandlerFunc
}

// NewHandlerBundle wires every handler over the given services.
func NewHandlerBundle(
	users userRepoPkg.UserRepository,
	view bookingview.ViewService,
	engine workflow.Engine,
	reservations reservation.Service,
	gate qualification.Gate,
	notifier notification.Service,
) *HandlerBundle {
	return &HandlerBundle{
		UserRepo: users,

		ListProviderBookingsHandler: ListProviderBookings(view),
		ListCustomerBookingsHandler: ListCustomerBookings(view),
		TransitionBookingHandler:    TransitionBooking(engine),

		CreateReservationHandler: CreateReservation(reservations),
		CreateTourBookingHandler: CreateTourBooking(reservations),
		GetReservationHandler:    GetReservation(reservations),

		SubmitProviderRequestHandler:  SubmitProviderRequest(gate),
		GetProviderRequestHandler:     GetProviderRequest(gate),
		ListProviderRequestsHandler:   ListProviderRequests(gate),
		ListMyProviderRequestsHandler: ListMyProviderRequests(gate),
		ApproveProviderRequestHandler: ApproveProviderRequest(gate),
		RejectProviderRequestHandler:  RejectProviderRequest(gate),

		ListNotificationsHandler:    ListNotifications(notifier),
		MarkNotificationReadHandler: MarkNotificationRead(notifier),
	}
}

// actorID returns the authenticated account id set by the auth middleware.
func actorID(c *gin.Context) string {
	v, _ := c.Get("userID")
	id, _ := v.(string)
	return id
}
