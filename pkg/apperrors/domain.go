package apperrors

import (
	"net/http"
)

// --- Auth ---

var ErrEmailAlreadyExists = New(
	CodeAlreadyExists,
	"auth",
	"Email already in use",
	http.StatusConflict,
)

var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid email or password",
	http.StatusUnauthorized,
)

// ErrInvalidToken - неверный, просроченный или отозванный токен
var ErrInvalidToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid or expired token",
	http.StatusUnauthorized,
)

var ErrUserInactive = New(
	CodeForbidden,
	"auth",
	"Account is not active",
	http.StatusForbidden,
)

var ErrInsufficientPermissions = New(
	CodeForbidden,
	"auth",
	"Insufficient permissions",
	http.StatusForbidden,
)

var ErrCannotModifySelf = New(
	CodeForbidden,
	"admin",
	"Operation on self is not allowed",
	http.StatusForbidden,
)

// --- Users & profiles ---

var ErrUserNotFound = NotFound("user", "User not found")

var ErrProfileNotFound = NotFound("profile", "Profile not found")

// --- Tasks ---

var ErrTaskNotFound = NotFound("task", "Task not found")

// ErrTaskNotOwner - операция доступна только клиенту, создавшему задачу
var ErrTaskNotOwner = New(
	CodeForbidden,
	"task",
	"Only the task owner can perform this action",
	http.StatusForbidden,
)

// ErrTaskNotAssignee - операция доступна только назначенному исполнителю
var ErrTaskNotAssignee = New(
	CodeForbidden,
	"task",
	"Only the assigned worker can perform this action",
	http.StatusForbidden,
)

var ErrTaskConcurrentUpdate = New(
	CodeConflict,
	"task",
	"Task was modified concurrently, reload and retry",
	http.StatusConflict,
)

// --- Applications ---

var ErrApplicationNotFound = NotFound("application", "Application not found")

var ErrApplicationAlreadyExists = New(
	CodeAlreadyExists,
	"application",
	"Worker has already applied to this task",
	http.StatusConflict,
)

var ErrApplicationNotOwner = New(
	CodeForbidden,
	"application",
	"Only the applying worker can perform this action",
	http.StatusForbidden,
)

// --- Reviews ---

var ErrReviewAlreadyExists = New(
	CodeAlreadyExists,
	"review",
	"Review for this task and worker already exists",
	http.StatusConflict,
)

var ErrReviewNotAllowed = New(
	CodeForbidden,
	"review",
	"Only the client of a completed task can review its assigned worker",
	http.StatusForbidden,
)

// --- Attachments ---

var ErrAttachmentNotFound = NotFound("attachment", "Attachment not found")

var ErrAttachmentNotAllowed = New(
	CodeForbidden,
	"attachment",
	"Only task participants can access attachments",
	http.StatusForbidden,
)

// --- Notifications ---

var ErrNotificationNotFound = NotFound("notification", "Notification not found")
