package commands

import (
	"hr-agent-system/internal/employee"
	"hr-agent-system/internal/model"
)

// DefaultSeedPassword is set on every seeded account unless --password is given.
const DefaultSeedPassword = "pw123"

var seedEmployees = []employee.CreateInput{
	{ID: "E001", Name: "Kalhar Dasanayaka", Department: "HR", Role: model.RoleHR, Balance: 18, LeaveHistory: []string{"2024-12-25", "2025-01-01"}},
	{ID: "E002", Name: "Anjana Perera", Department: "HR", Role: model.RoleHR, Balance: 20, LeaveHistory: []string{}},
	{ID: "E003", Name: "Ravindu Cooray", Department: "IT", Role: model.RoleEmployee, Balance: 15, LeaveHistory: []string{"2025-02-14", "2025-03-15", "2025-04-10", "2025-05-20", "2025-06-25"}},
	{ID: "E004", Name: "Hasitha Pathum", Department: "IT", Role: model.RoleEmployee, Balance: 18, LeaveHistory: []string{"2025-01-15"}},
	{ID: "E005", Name: "Banula Lavindu", Department: "IT", Role: model.RoleEmployee, Balance: 16, LeaveHistory: []string{"2025-03-01", "2025-04-22"}},
	{ID: "E006", Name: "Kolitha Bhanu", Department: "IT", Role: model.RoleEmployee, Balance: 19, LeaveHistory: []string{"2025-02-28"}},
	{ID: "E007", Name: "Tharinda Hasaranga", Department: "IT", Role: model.RoleEmployee, Balance: 14, LeaveHistory: []string{"2025-01-10", "2025-02-15", "2025-03-20", "2025-04-25", "2025-05-30", "2025-06-15"}},
	{ID: "E008", Name: "Veenath Mihisara", Department: "IT", Role: model.RoleEmployee, Balance: 17, LeaveHistory: []string{"2025-04-01", "2025-05-15", "2025-06-10"}},
	{ID: "E009", Name: "Pinil Dissanayaka", Department: "IT", Role: model.RoleEmployee, Balance: 12, LeaveHistory: []string{"2025-01-05", "2025-02-12", "2025-03-18", "2025-04-22", "2025-05-28", "2025-06-30", "2025-07-15", "2025-07-20"}},
	{ID: "E010", Name: "Lakshith Bandara", Department: "IT", Role: model.RoleEmployee, Balance: 20, LeaveHistory: []string{}},
	{ID: "E011", Name: "Thisal Thulnith", Department: "IT", Role: model.RoleEmployee, Balance: 13, LeaveHistory: []string{"2025-02-01", "2025-03-05", "2025-04-12", "2025-05-18", "2025-06-22", "2025-07-08", "2025-07-25"}},
	{ID: "E012", Name: "Nipuni Virajitha", Department: "Marketing", Role: model.RoleEmployee, Balance: 18, LeaveHistory: []string{"2025-03-10", "2025-05-15"}},
	{ID: "E013", Name: "Sachini Fernando", Department: "Marketing", Role: model.RoleEmployee, Balance: 16, LeaveHistory: []string{"2025-01-20", "2025-04-05", "2025-06-18", "2025-07-02"}},
	{ID: "E014", Name: "Danushka Silva", Department: "Marketing", Role: model.RoleEmployee, Balance: 19, LeaveHistory: []string{"2025-05-01"}},
	{ID: "E015", Name: "Malindu Rashmika", Department: "Games", Role: model.RoleEmployee, Balance: 15, LeaveHistory: []string{"2025-02-14", "2025-04-18", "2025-06-12", "2025-07-20", "2025-07-28"}},
	{ID: "E016", Name: "Yasiru Tamsisi", Department: "Games", Role: model.RoleEmployee, Balance: 17, LeaveHistory: []string{"2025-03-22", "2025-05-08", "2025-07-12"}},
	{ID: "E017", Name: "Chamindu Ganganath", Department: "Games", Role: model.RoleEmployee, Balance: 11, LeaveHistory: []string{"2025-01-08", "2025-02-20", "2025-03-25", "2025-04-30", "2025-05-22", "2025-06-28", "2025-07-15", "2025-07-30"}},
	{ID: "E018", Name: "Lahiru Prasanga", Department: "Games", Role: model.RoleEmployee, Balance: 20, LeaveHistory: []string{}},
	{ID: "E019", Name: "Prabath Megha", Department: "Games", Role: model.RoleEmployee, Balance: 14, LeaveHistory: []string{"2025-01-25", "2025-03-15", "2025-05-10", "2025-06-20", "2025-07-05", "2025-07-18"}},
	{ID: "E020", Name: "Kasun Rajitha", Department: "Games", Role: model.RoleEmployee, Balance: 16, LeaveHistory: []string{"2025-02-05", "2025-04-28", "2025-06-15", "2025-07-22"}},
	{ID: "E021", Name: "Priyanka Jayasinghe", Department: "Finance", Role: model.RoleEmployee, Balance: 18, LeaveHistory: []string{"2025-03-08", "2025-06-12"}},
	{ID: "E022", Name: "Ruwan Kumara", Department: "Finance", Role: model.RoleEmployee, Balance: 19, LeaveHistory: []string{"2025-05-20"}},
	{ID: "E023", Name: "Amali Wickramasinghe", Department: "Operations", Role: model.RoleEmployee, Balance: 15, LeaveHistory: []string{"2025-01-12", "2025-03-18", "2025-05-25", "2025-07-08", "2025-07-26"}},
	{ID: "E024", Name: "Chaminda Rathnayake", Department: "Operations", Role: model.RoleEmployee, Balance: 17, LeaveHistory: []string{"2025-02-28", "2025-04-15", "2025-06-30"}},
	{ID: "E025", Name: "Sanduni Perera", Department: "Operations", Role: model.RoleEmployee, Balance: 20, LeaveHistory: []string{}},
}
