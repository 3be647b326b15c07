package repository

import (
	notificationRepo "travelhub/database/repository/notification"
	providerReqRepo "travelhub/database/repository/providerreq"
	reservationRepo "travelhub/database/repository/reservation"
	serviceRepo "travelhub/database/repository/service"
	tourRepo "travelhub/database/repository/tour"
	userRepo "travelhub/database/repository/user"
	vehicleRepo "travelhub/database/repository/vehicle"
)

// Re-export the repository interfaces and constructors.

type UserRepository = userRepo.UserRepository

var NewMongoUserRepo = userRepo.NewMongoUserRepo

type ServiceRepository = serviceRepo.ServiceRepository

var NewMongoServiceRepo = serviceRepo.NewMongoServiceRepo

type ReservationRepository = reservationRepo.ReservationRepository

var NewMongoReservationRepo = reservationRepo.NewMongoReservationRepo

type TourRepository = tourRepo.TourRepository

var NewMongoTourRepo = tourRepo.NewMongoTourRepo

type VehicleRepository = vehicleRepo.VehicleRepository

var NewMongoVehicleRepo = vehicleRepo.NewMongoVehicleRepo

type ProviderRequestRepository = providerReqRepo.ProviderRequestRepository

var NewMongoProviderRequestRepo = providerReqRepo.NewMongoProviderRequestRepo

type NotificationRepository = notificationRepo.NotificationRepository

var NewMongoNotificationRepo = notificationRepo.NewMongoNotificationRepo
