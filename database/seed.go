package database

import (
	"assisthub/models"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Seed loads the campus fixture set into an empty store. Running it against a
// store that already has profiles is a no-op, so restarts of a persistent
// database do not duplicate rows.
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	log.Println("Seeding fixture data...")

	prefs := datatypes.NewJSONType(models.DefaultPreferences())

	users := []models.User{
		{
			ID: "S001", Name: "Alex Johnson", Role: models.RoleStudent, Email: "alex.j@niat.edu",
			AvatarURL: "https://api.dicebear.com/8.x/adventurer/svg?seed=Alex",
			Program:   "B.Tech CSE (AI & ML)",
			About:     "Passionate about Artificial Intelligence and building scalable web applications. Lead of the NIAT Coding Club.",
			Skills:    datatypes.NewJSONSlice([]string{"Python", "React", "TensorFlow", "Node.js", "C++"}),
			GPA:       8.9, Attendance: 92, Preferences: prefs,
		},
		{
			ID: "S002", Name: "Priya Sharma", Role: models.RoleStudent, Email: "priya.s@niat.edu",
			AvatarURL: "https://api.dicebear.com/8.x/adventurer/svg?seed=Priya",
			Program:   "B.Tech CSE (Data Science)",
			Skills:    datatypes.NewJSONSlice([]string{"Python", "SQL", "Tableau"}),
			GPA:       8.4, Attendance: 88, Preferences: prefs,
		},
		{
			ID: "F001", Name: "Dr. Evelyn Reed", Role: models.RoleFaculty, Email: "e.reed@niat.edu",
			AvatarURL:  "https://api.dicebear.com/8.x/adventurer/svg?seed=Evelyn",
			Department: "Computer Science & Engineering",
			About:      "Ph.D. in Neural Networks with 10 years of teaching experience. Research interests include Deep Learning and Computer Vision.",
			Skills:     datatypes.NewJSONSlice([]string{"Machine Learning", "Curriculum Design", "Python", "Research", "Mentoring"}),
			Preferences: prefs,
		},
		{
			ID: "A001", Name: "Marcus Chen", Role: models.RoleAdmin, Email: "m.chen@niat.edu",
			AvatarURL:  "https://api.dicebear.com/8.x/adventurer/svg?seed=Marcus",
			Department: "Administration",
			About:      "Overseeing campus operations and digital infrastructure. Committed to providing a seamless experience for students and faculty.",
			Skills:     datatypes.NewJSONSlice([]string{"Management", "System Administration", "Communication", "Logistics"}),
			Preferences: prefs,
		},
	}

	day := func(s string) time.Time {
		t, _ := time.Parse("2006-01-02", s)
		return t
	}

	tickets := []models.Ticket{
		{
			ID: "T-1001", Title: "Projector not working in Lab 3", Category: models.CategoryIT,
			Status: models.TicketPending, Priority: models.PriorityMedium,
			SubmittedBy: "F001", SubmittedByName: "Dr. Evelyn Reed", AssignedToRole: models.RoleAdmin,
			Description: "HDMI cable seems broken.", CreatedAt: day("2024-06-15"),
		},
		{
			ID: "T-1002", Title: "Water leakage in Hostel B", Category: models.CategoryHostel,
			Status: models.TicketInProgress, Priority: models.PriorityHigh,
			SubmittedBy: "S001", SubmittedByName: "Alex Johnson", AssignedToRole: models.RoleAdmin,
			Description: "Room 302 bathroom tap leaking.", CreatedAt: day("2024-06-14"),
		},
		{
			ID: "T-1003", Title: "Library Wifi Slow", Category: models.CategoryIT,
			Status: models.TicketResolved, Priority: models.PriorityLow,
			SubmittedBy: "S002", SubmittedByName: "Priya Sharma", AssignedToRole: models.RoleAdmin,
			Description: "Cannot download research papers.", ResolutionNotes: "Access point in reading hall replaced.",
			CreatedAt: day("2024-06-10"),
		},
	}

	permissions := []models.PermissionRequest{
		{
			ID: "REQ-001", Type: "Out Pass", RequesterID: "S001", RequesterName: "Alex Johnson",
			RequesterRole: models.RoleStudent, Status: models.PermissionPending,
			Details: "Going home for weekend", CreatedAt: day("2024-06-21"),
		},
		{
			ID: "REQ-002", Type: "Event Hosting", RequesterID: "S002", RequesterName: "Priya Sharma",
			RequesterRole: models.RoleStudent, Status: models.PermissionApproved,
			Details: "Coding Club Meetup", CreatedAt: day("2024-06-18"),
		},
	}

	announcements := []models.Announcement{
		{ID: "A1", Title: "Hackathon Registration Open", Content: "Register for the annual code fest by Friday.", Date: "2024-06-20", IsNiatNews: true},
		{ID: "A2", Title: "New AI Model Released", Content: "Google releases Gemini 2.5 with enhanced reasoning.", Date: "2024-06-18", IsNiatNews: false},
		{ID: "A3", Title: "Campus Maintenance Schedule", Content: "Power outage expected on Saturday 2pm-4pm.", Date: "2024-06-19", IsNiatNews: true},
	}

	now := time.Now()
	notifications := []models.AppNotification{
		{ID: "n1", Title: "Ticket Updated", Message: "Your ticket #T-1001 has been resolved.", Type: "success", Timestamp: now.Add(-10000 * time.Second), Read: false},
		{ID: "n2", Title: "New Announcement", Message: "Hackathon registration deadline extended.", Type: "info", Timestamp: now.Add(-80000 * time.Second), Read: true},
		{ID: "n3", Title: "Placement Alert", Message: "Google SDE Intern drive is now open.", Type: "warning", Timestamp: now.Add(-200000 * time.Second), Read: false},
	}

	courses := []models.Course{
		{ID: "C101", Code: "CS301", Name: "Machine Learning", Instructor: "Dr. E. Reed", InstructorID: "F001", Progress: 75, Credits: 4, Grade: "A"},
		{ID: "C102", Code: "CS304", Name: "Web Development", Instructor: "Prof. A. Grant", InstructorID: "F002", Progress: 45, Credits: 3, Grade: "In Progress"},
		{ID: "C103", Code: "HS201", Name: "Soft Skills", Instructor: "Mrs. S. Lee", InstructorID: "F003", Progress: 90, Credits: 2, Grade: "O"},
	}

	timetable := []models.TimetableEntry{
		{Day: "Monday", Course: "Machine Learning", Time: "09:00 - 10:00", Room: "C301"},
		{Day: "Monday", Course: "Web Development", Time: "11:00 - 12:00", Room: "Lab 2"},
		{Day: "Tuesday", Course: "Soft Skills", Time: "10:00 - 11:00", Room: "Sem Hall 1"},
		{Day: "Tuesday", Course: "Machine Learning", Time: "14:00 - 15:00", Room: "C301"},
		{Day: "Wednesday", Course: "Web Development", Time: "09:00 - 11:00", Room: "Lab 2"},
		{Day: "Thursday", Course: "Machine Learning", Time: "11:00 - 12:00", Room: "C301"},
		{Day: "Friday", Course: "Soft Skills", Time: "15:00 - 16:00", Room: "Sem Hall 1"},
	}

	placements := []models.PlacementDrive{
		{ID: "P1", Company: "Google", CompanyLogo: "https://cdn.worldvectorlogo.com/logos/google-2015.svg", Role: "SDE Intern", CTC: "12 LPA", Status: models.PlacementOpen},
		{ID: "P2", Company: "Amazon", CompanyLogo: "https://cdn.worldvectorlogo.com/logos/amazon-2.svg", Role: "Software Engineer", CTC: "24 LPA", Status: models.PlacementApplied},
		{ID: "P3", Company: "TCS", CompanyLogo: "https://cdn.worldvectorlogo.com/logos/tcs-2.svg", Role: "System Engineer", CTC: "7 LPA", Status: models.PlacementClosed},
	}

	buildings := []models.CampusBuilding{
		{ID: "b1", Name: "Admin Block", Position: datatypes.NewJSONSlice([]float64{0, 0, 0}), Size: datatypes.NewJSONSlice([]float64{6, 5, 6}), Color: "#06b6d4", Description: "Admissions, Accounts, and Principal Office.", Status: "Open"},
		{ID: "b2", Name: "CSE Dept", Position: datatypes.NewJSONSlice([]float64{12, 0, 5}), Size: datatypes.NewJSONSlice([]float64{5, 8, 5}), Color: "#8b5cf6", Description: "Labs 1-4, Server Room, Faculty Cabins.", Status: "Busy"},
		{ID: "b3", Name: "ECE Dept", Position: datatypes.NewJSONSlice([]float64{12, 0, -5}), Size: datatypes.NewJSONSlice([]float64{5, 7, 5}), Color: "#a3e635", Description: "IoT Lab, VLSI Lab, Robotics Center.", Status: "Classes"},
		{ID: "b4", Name: "Library", Position: datatypes.NewJSONSlice([]float64{-12, 0, 0}), Size: datatypes.NewJSONSlice([]float64{5, 4, 8}), Color: "#f59e0b", Description: "Central Library and Digital Resource Center.", Status: "Quiet"},
		{ID: "b5", Name: "Auditorium", Position: datatypes.NewJSONSlice([]float64{0, 0, -12}), Size: datatypes.NewJSONSlice([]float64{8, 5, 5}), Color: "#ec4899", Description: "Main venue for events and seminars.", Status: "Event"},
		{ID: "b6", Name: "Cafeteria", Position: datatypes.NewJSONSlice([]float64{0, 0, 12}), Size: datatypes.NewJSONSlice([]float64{6, 3, 4}), Color: "#f43f5e", Description: "Food court and recreation area.", Status: "Open"},
		{ID: "b7", Name: "Hostels", Position: datatypes.NewJSONSlice([]float64{-15, 0, -15}), Size: datatypes.NewJSONSlice([]float64{4, 10, 10}), Color: "#10b981", Description: "Student accommodation blocks.", Status: "Restricted"},
	}

	return db.Transaction(func(tx *gorm.DB) error {
		for _, batch := range []interface{}{
			&users, &tickets, &permissions, &announcements, &notifications,
			&courses, &timetable, &placements, &buildings,
		} {
			if err := tx.Create(batch).Error; err != nil {
				return err
			}
		}

		// Every seeded ticket gets its creation audit row.
		for _, t := range tickets {
			entry := models.AuditEntry{
				ID:        uuid.NewString(),
				SubjectID: t.ID,
				Action:    "Ticket Created",
				ActorName: t.SubmittedByName,
				CreatedAt: t.CreatedAt,
			}
			if err := tx.Create(&entry).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
