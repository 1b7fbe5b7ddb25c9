package config

type (
	DriverConfig struct {
		MongoDB  MongoDB
		Redis    Redis
		RabbitMQ RabbitMQ
		SMTP     SMTP
		Minio    Minio
		Logger   Logger
	}
	MongoDB struct {
		Port     string
		Host     string
		DbName   string
		Username string
		Password string
	}
	Redis struct {
		Host     string
		Port     string
		Password string
	}
	RabbitMQ struct {
		Port     string
		Host     string
		Username string
		Password string
	}
	SMTP struct {
		Host        string
		Port        int
		Username    string
		Password    string
		EmailSender string
	}
	Minio struct {
		Port       string
		Host       string
		Username   string
		Password   string
		BucketName string
		UseSSL     bool
	}
	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
)

type (
	InternalConfig struct {
		App App
		JWT JWT
	}

	App struct {
		Env                         string
		Port                        string
		Version                     string
		Timezone                    string
		MaxRequests                 int
		ShutdownTimeout             int
		RequestBodyLimitInMegabyte  int
		DoctorCacheTTLInSeconds     int
		DayLockTTLInSeconds         int
		NotificationQueue           string
		NotificationRecipient       string
		NotificationSendsPerSecond  int
		HookAPIKeyHash              string
		ImageMaxUploadSizeInMB      int64
		ImagePresignExpiryInMinutes int
	}

	JWT struct {
		Secret string
	}
)
