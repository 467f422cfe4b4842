package model

type Project struct {
	ID   string `gorm:"default:(-)"`
	Name string
}

type Command struct {
	ID        string `gorm:"default:(-)"`
	ProjectID string
	Name      string
	Script    string
	Step      string
	Order     int
	Servers   []Server `gorm:"many2many:command_servers;"`
}

// CommandServer is a row of the command_servers join table.
type CommandServer struct {
	CommandID string `gorm:"primaryKey"`
	ServerID  string `gorm:"primaryKey"`
}
