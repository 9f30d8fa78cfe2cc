package constants

// Vai trò nhân viên trong token
const (
	RoleAdmin        = 1
	RoleManager      = 2
	RoleFrontDesk    = 3
	RoleHousekeeping = 4
)

// Các nhóm vai trò dùng cho route
var (
	BackOffice   = []int{RoleAdmin, RoleManager, RoleFrontDesk, RoleHousekeeping}
	FrontOffice  = []int{RoleAdmin, RoleManager, RoleFrontDesk}
	Housekeeping = []int{RoleAdmin, RoleManager, RoleHousekeeping}
	Management   = []int{RoleAdmin, RoleManager}
)

// Key lưu trong gin.Context
const (
	CtxUserID    = "userID"
	CtxUserRole  = "userRole"
	CtxRequestID = "requestId"
)

const (
	DefaultPort           = "8083"
	DefaultNightAuditCron = "0 0 * * *"
)
