package request

type UpdateServerRequest struct {
	Name       *string `json:"name" binding:"omitempty,min=1"`
	User       *string `json:"user" binding:"omitempty,min=1"`
	IpAddress  *string `json:"ip_address" binding:"omitempty,ip|hostname_rfc1123"`
	Port       *int    `json:"port" binding:"omitempty,gte=1,lte=65535"`
	Path       *string `json:"path" binding:"omitempty,min=1"`
	DeployCode *bool   `json:"deploy_code"`
}
