package enum

// UserRole is the role a user holds inside a shop
type UserRole string

const (
	RoleSuperAdmin UserRole = "SUPER_ADMIN"
	RoleShopOwner  UserRole = "SHOP_OWNER"
	RoleShopWorker UserRole = "SHOP_WORKER"
)

// Permission names checked by the HTTP layer
const (
	PermRecordServices = "record-services"
	PermRecordSales    = "record-sales"
	PermViewClosing    = "view-closing"
	PermSubmitClosing  = "submit-closing"
	PermViewFeeRules   = "view-fee-rules"
	PermManageFeeRules = "manage-fee-rules"
	PermManagePurchase = "manage-purchases"
	PermManageLoans    = "manage-loans"
	PermViewReports    = "view-reports"
	PermManageWorkers  = "manage-workers"
)

var allPermissions = []string{
	PermRecordServices,
	PermRecordSales,
	PermViewClosing,
	PermSubmitClosing,
	PermViewFeeRules,
	PermManageFeeRules,
	PermManagePurchase,
	PermManageLoans,
	PermViewReports,
	PermManageWorkers,
}

var workerPermissions = []string{
	PermRecordServices,
	PermRecordSales,
	PermViewClosing,
	PermViewFeeRules,
	PermManageLoans,
}

func (r UserRole) String() string {
	return string(r)
}

func (r UserRole) IsValid() bool {
	return r == RoleSuperAdmin || r == RoleShopOwner || r == RoleShopWorker
}

// CanSubmitClosing is true for shop owners and platform administrators
func (r UserRole) CanSubmitClosing() bool {
	return r == RoleShopOwner || r == RoleSuperAdmin
}

// Permissions returns the permission set granted to the role
func (r UserRole) Permissions() []string {
	var src []string
	switch r {
	case RoleSuperAdmin, RoleShopOwner:
		src = allPermissions
	case RoleShopWorker:
		src = workerPermissions
	}
	out := make([]string, len(src))
	copy(out, src)
	return out
}
