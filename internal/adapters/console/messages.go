package console

const menuText = "\nMenu:\n" +
	"1 - Full-time Employee\n" +
	"2 - Part-time Employee\n" +
	"3 - Contractual Employee\n" +
	"4 - Display Payroll Report\n" +
	"5 - Exit\n" +
	"Enter your choice: "

const (
	promptID       = "Enter ID: "
	promptName     = "Enter Name: "
	promptSalary   = "Enter Salary: "
	promptHours    = "Enter Hours Worked: "
	promptProjects = "Enter Number of Projects: "

	msgInvalidInput  = "Invalid input! Please try again.\n"
	msgInvalidChoice = "Invalid choice! Please enter a number between 1 and 5.\n"
	msgRegistryFull  = "Registry is full! Cannot add more employees.\n"

	reportHeader    = "------ Employee Payroll Report ------\n"
	reportEmpty     = "No employees recorded.\n"
	reportSeparator = "---------------------------------\n"
)
