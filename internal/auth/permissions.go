package auth

import "workhub_backend/internal/models"

// Permission - право на операцию
type Permission string

const (
	PermTaskCreate        Permission = "task:create"
	PermTaskManageOwn     Permission = "task:manage:own" // accept/reject, receive, pay, extension response
	PermTaskCancelAny     Permission = "task:cancel:any"
	PermTaskDeliver       Permission = "task:deliver"
	PermApplicationCreate Permission = "application:create"
	PermApplicationsAny   Permission = "application:read:any"
	PermReviewCreate      Permission = "review:create"
	PermMatchingRank      Permission = "matching:rank"
	PermMatchingRecommend Permission = "matching:recommend"
	PermUsersManage       Permission = "users:manage"
	PermRatingsReconcile  Permission = "ratings:reconcile"
)

// Permissions - RBAC: роль -> разрешения
var Permissions = map[models.UserRole][]Permission{
	models.UserRoleAdmin: {
		PermTaskCancelAny,
		PermApplicationsAny,
		PermMatchingRank,
		PermUsersManage,
		PermRatingsReconcile,
	},
	models.UserRoleClient: {
		PermTaskCreate,
		PermTaskManageOwn,
		PermReviewCreate,
		PermMatchingRank,
	},
	models.UserRoleWorker: {
		PermTaskDeliver,
		PermApplicationCreate,
		PermMatchingRecommend,
	},
}

// HasPermission проверяет есть ли у роли указанное разрешение
func HasPermission(role models.UserRole, permission Permission) bool {
	for _, p := range Permissions[role] {
		if p == permission {
			return true
		}
	}
	return false
}
