package auth

// GetPermissionModel 获取 OpenFGA 权限模型定义
func GetPermissionModel() string {
	return `model
  schema 1.1

type user

type community
  relations
    define admin: [user]
    define secretary: [user] or admin
    define professional: [user]
    define member_reader: [user] or secretary or admin

type help_request
  relations
    define requester: [user]
    define assignee: [user]
    define viewer: [user] or requester or assignee
    define operator: [user] or requester or assignee

type appointment
  relations
    define owner: [user]
    define viewer: [user] or owner
    define operator: [user] or owner`
}
