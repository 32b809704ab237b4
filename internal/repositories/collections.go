package repositories

// Collection names mirror the stored document layout.
const (
	usersCollection                 = "users"
	propertiesCollection            = "properties"
	suggestionsCollection           = "suggestions"
	landlordNotificationsCollection = "landlord_notifications"
	tenantNotificationsCollection   = "tenant_notifications"

	joinRequestsSub        = "joinRequests"
	maintenanceRequestsSub = "maintenanceRequests"
)
