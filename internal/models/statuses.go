package models

type UserStatus string
type UserRole string
type TaskStatus string
type TaskCategory string
type DeliveryStatus string
type PaymentStatus string
type ExtensionStatus string
type ApplicationStatus string
type Availability string

const (
	UserStatusActive    UserStatus = "ACTIVE"
	UserStatusSuspended UserStatus = "SUSPENDED"
	UserStatusBanned    UserStatus = "BANNED"

	UserRoleAdmin  UserRole = "ADMIN"
	UserRoleClient UserRole = "CLIENT"
	UserRoleWorker UserRole = "WORKER"

	TaskStatusOpen       TaskStatus = "OPEN"
	TaskStatusInProgress TaskStatus = "IN_PROGRESS"
	TaskStatusCompleted  TaskStatus = "COMPLETED"
	TaskStatusCancelled  TaskStatus = "CANCELLED"

	DeliveryStatusNotDelivered DeliveryStatus = "NOT_DELIVERED"
	DeliveryStatusDelivered    DeliveryStatus = "DELIVERED"
	DeliveryStatusReceived     DeliveryStatus = "RECEIVED"

	PaymentStatusNotPaid PaymentStatus = "NOT_PAID"
	PaymentStatusPaid    PaymentStatus = "PAID"

	ExtensionStatusPending  ExtensionStatus = "PENDING"
	ExtensionStatusApproved ExtensionStatus = "APPROVED"
	ExtensionStatusRejected ExtensionStatus = "REJECTED"

	ApplicationStatusPending   ApplicationStatus = "PENDING"
	ApplicationStatusAccepted  ApplicationStatus = "ACCEPTED"
	ApplicationStatusRejected  ApplicationStatus = "REJECTED"
	ApplicationStatusWithdrawn ApplicationStatus = "WITHDRAWN"

	AvailabilityAvailable   Availability = "AVAILABLE"
	AvailabilityBusy        Availability = "BUSY"
	AvailabilityUnavailable Availability = "UNAVAILABLE"
)

const (
	CategoryCleaning TaskCategory = "CLEANING"
	CategoryRepair   TaskCategory = "REPAIR"
	CategoryDelivery TaskCategory = "DELIVERY"
	CategoryMoving   TaskCategory = "MOVING"
	CategoryTutoring TaskCategory = "TUTORING"
	CategoryIT       TaskCategory = "IT"
	CategoryDesign   TaskCategory = "DESIGN"
	CategoryWriting  TaskCategory = "WRITING"
	CategoryOther    TaskCategory = "OTHER"
)

// TaskCategories - все допустимые категории
var TaskCategories = []TaskCategory{
	CategoryCleaning, CategoryRepair, CategoryDelivery, CategoryMoving,
	CategoryTutoring, CategoryIT, CategoryDesign, CategoryWriting, CategoryOther,
}

func (c TaskCategory) IsValid() bool {
	for _, known := range TaskCategories {
		if c == known {
			return true
		}
	}
	return false
}

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleAdmin, UserRoleClient, UserRoleWorker:
		return true
	}
	return false
}

func (s UserStatus) IsValid() bool {
	switch s {
	case UserStatusActive, UserStatusSuspended, UserStatusBanned:
		return true
	}
	return false
}

func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskStatusOpen, TaskStatusInProgress, TaskStatusCompleted, TaskStatusCancelled:
		return true
	}
	return false
}

// IsTerminal - из COMPLETED и CANCELLED переходов нет
func (s TaskStatus) IsTerminal() bool {
	return s == TaskStatusCompleted || s == TaskStatusCancelled
}

func (s ApplicationStatus) IsTerminal() bool {
	return s != ApplicationStatusPending
}

func (a Availability) IsValid() bool {
	switch a {
	case AvailabilityAvailable, AvailabilityBusy, AvailabilityUnavailable:
		return true
	}
	return false
}
