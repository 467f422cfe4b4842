package request

type ReorderServersRequest struct {
	ServerIDs []string `json:"server_ids" binding:"required,min=1,dive,required"`
}
