package email

const (
	defaultSMTPPort = 587
	defaultFromName = "WorkHub"
)

// SMTPConfig - параметры SMTP-сервера для уведомлений
type SMTPConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromEmail string
	FromName  string
	// LocalName - имя для HELO, пусто - имя хоста
	LocalName string
}

// withDefaults подставляет порт submission и имя отправителя
func (c SMTPConfig) withDefaults() SMTPConfig {
	if c.Port == 0 {
		c.Port = defaultSMTPPort
	}
	if c.FromName == "" {
		c.FromName = defaultFromName
	}
	return c
}
