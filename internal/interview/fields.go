package interview

// Ключи полей анкеты
const (
	FieldName       = "name"
	FieldPhone      = "phone_number"
	FieldEmail      = "email_address"
	FieldLocation   = "location"
	FieldRole       = "role"
	FieldExperience = "experience_years"
	FieldTechStack  = "tech_stack"
)

// ProfileField представляет одно поле анкеты кандидата
type ProfileField struct {
	Key   string
	Label string
}

// ProfileFields - фиксированный порядок полей анкеты.
// Порядок важен: курсор сессии - это позиция в этом списке.
var ProfileFields = []ProfileField{
	{Key: FieldName, Label: "your full name"},
	{Key: FieldPhone, Label: "your 10-digit phone number"},
	{Key: FieldEmail, Label: "your email address"},
	{Key: FieldLocation, Label: "your current location"},
	{Key: FieldRole, Label: "the role you are applying for"},
	{Key: FieldExperience, Label: "your years of experience"},
	{Key: FieldTechStack, Label: "your main programming expertise"},
}
