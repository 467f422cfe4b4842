package request

type CreateServerRequest struct {
	Name        string `json:"name" binding:"required"`
	User        string `json:"user" binding:"required"`
	IpAddress   string `json:"ip_address" binding:"required,ip|hostname_rfc1123"`
	Port        *int   `json:"port" binding:"omitempty,gte=1,lte=65535"`
	Path        string `json:"path" binding:"required"`
	ProjectID   string `json:"project_id" binding:"required,uuid"`
	DeployCode  *bool  `json:"deploy_code"`
	AddCommands bool   `json:"add_commands"`
}
