package domain

// SeedEmployees is the built-in dataset served when no dataset file is
// configured. Ordered by ID; the order is what an empty sort preserves.
var SeedEmployees = []Employee{
	{ID: 1, Name: "John Doe", Email: "john.doe@staffgrid.dev", Department: DeptEngineering, Title: "Senior Engineer", Salary: 125000, Age: 38, HiredAt: "2017-03-14"},
	{ID: 2, Name: "Jane Smith", Email: "jane.smith@staffgrid.dev", Department: DeptEngineering, Title: "Staff Engineer", Salary: 148000, Age: 41, HiredAt: "2015-09-01"},
	{ID: 3, Name: "Maria Garcia", Email: "maria.garcia@staffgrid.dev", Department: DeptSales, Title: "Account Executive", Salary: 88000, Age: 29, HiredAt: "2021-01-11"},
	{ID: 4, Name: "James Johnson", Email: "james.johnson@staffgrid.dev", Department: DeptMarketing, Title: "Content Strategist", Salary: 72000, Age: 33, HiredAt: "2019-06-24"},
	{ID: 5, Name: "Wei Chen", Email: "wei.chen@staffgrid.dev", Department: DeptEngineering, Title: "Platform Engineer", Salary: 118000, Age: 31, HiredAt: "2020-02-03"},
	{ID: 6, Name: "Fatima Al-Sayed", Email: "fatima.alsayed@staffgrid.dev", Department: DeptFinance, Title: "Financial Analyst", Salary: 94000, Age: 35, HiredAt: "2018-10-15"},
	{ID: 7, Name: "Oliver Brown", Email: "oliver.brown@staffgrid.dev", Department: DeptSupport, Title: "Support Lead", Salary: 67000, Age: 44, HiredAt: "2016-04-07"},
	{ID: 8, Name: "Priya Patel", Email: "priya.patel@staffgrid.dev", Department: DeptEngineering, Title: "Frontend Engineer", Salary: 109000, Age: 27, HiredAt: "2022-08-29"},
	{ID: 9, Name: "Lucas Martin", Email: "lucas.martin@staffgrid.dev", Department: DeptSales, Title: "Sales Manager", Salary: 102000, Age: 39, HiredAt: "2014-11-20"},
	{ID: 10, Name: "Emma Wilson", Email: "emma.wilson@staffgrid.dev", Department: DeptHR, Title: "People Partner", Salary: 78000, Age: 36, HiredAt: "2019-02-18"},
	{ID: 11, Name: "Noah Anderson", Email: "noah.anderson@staffgrid.dev", Department: DeptEngineering, Title: "SRE", Salary: 121000, Age: 34, HiredAt: "2018-07-02"},
	{ID: 12, Name: "Sofia Rossi", Email: "sofia.rossi@staffgrid.dev", Department: DeptMarketing, Title: "Brand Manager", Salary: 83000, Age: 30, HiredAt: "2020-05-12"},
	{ID: 13, Name: "Liam O'Connor", Email: "liam.oconnor@staffgrid.dev", Department: DeptFinance, Title: "Controller", Salary: 112000, Age: 47, HiredAt: "2013-01-28"},
	{ID: 14, Name: "Aisha Mohammed", Email: "aisha.mohammed@staffgrid.dev", Department: DeptSupport, Title: "Support Engineer", Salary: 61000, Age: 26, HiredAt: "2023-03-06"},
	{ID: 15, Name: "Ethan Taylor", Email: "ethan.taylor@staffgrid.dev", Department: DeptEngineering, Title: "Backend Engineer", Salary: 114000, Age: 31, HiredAt: "2021-09-13"},
	{ID: 16, Name: "Chloe Dubois", Email: "chloe.dubois@staffgrid.dev", Department: DeptSales, Title: "Account Executive", Salary: 86000, Age: 28, HiredAt: "2022-01-31"},
	{ID: 17, Name: "Mateo Hernandez", Email: "mateo.hernandez@staffgrid.dev", Department: DeptEngineering, Title: "Data Engineer", Salary: 117000, Age: 33, HiredAt: "2019-12-09"},
	{ID: 18, Name: "Hannah Lee", Email: "hannah.lee@staffgrid.dev", Department: DeptHR, Title: "Recruiter", Salary: 69000, Age: 29, HiredAt: "2021-06-21"},
	{ID: 19, Name: "Daniel Kim", Email: "daniel.kim@staffgrid.dev", Department: DeptFinance, Title: "Accountant", Salary: 81000, Age: 37, HiredAt: "2017-08-14"},
	{ID: 20, Name: "Isabella Silva", Email: "isabella.silva@staffgrid.dev", Department: DeptMarketing, Title: "Growth Marketer", Salary: 76000, Age: 27, HiredAt: "2022-11-07"},
	{ID: 21, Name: "Jack Thompson", Email: "jack.thompson@staffgrid.dev", Department: DeptSupport, Title: "Support Engineer", Salary: 59000, Age: 24, HiredAt: "2024-02-19"},
	{ID: 22, Name: "Amara Okafor", Email: "amara.okafor@staffgrid.dev", Department: DeptEngineering, Title: "Security Engineer", Salary: 129000, Age: 36, HiredAt: "2016-10-03"},
	{ID: 23, Name: "Henry White", Email: "henry.white@staffgrid.dev", Department: DeptSales, Title: "SDR", Salary: 54000, Age: 23, HiredAt: "2024-06-10"},
	{ID: 24, Name: "Mia Novak", Email: "mia.novak@staffgrid.dev", Department: DeptFinance, Title: "Financial Analyst", Salary: 91000, Age: 32, HiredAt: "2020-09-28"},
	{ID: 25, Name: "Yusuf Demir", Email: "yusuf.demir@staffgrid.dev", Department: DeptEngineering, Title: "Mobile Engineer", Salary: 107000, Age: 30, HiredAt: "2021-04-05"},
	{ID: 26, Name: "Grace Murphy", Email: "grace.murphy@staffgrid.dev", Department: DeptHR, Title: "HR Generalist", Salary: 65000, Age: 31, HiredAt: "2020-12-14"},
	{ID: 27, Name: "Leo Fischer", Email: "leo.fischer@staffgrid.dev", Department: DeptMarketing, Title: "SEO Specialist", Salary: 71000, Age: 34, HiredAt: "2018-05-22"},
	{ID: 28, Name: "Nina Ivanova", Email: "nina.ivanova@staffgrid.dev", Department: DeptEngineering, Title: "QA Engineer", Salary: 98000, Age: 38, HiredAt: "2017-11-27"},
	{ID: 29, Name: "Samuel Green", Email: "samuel.green@staffgrid.dev", Department: DeptSupport, Title: "Support Engineer", Salary: 60000, Age: 26, HiredAt: "2023-07-17"},
	{ID: 30, Name: "Ava Nakamura", Email: "ava.nakamura@staffgrid.dev", Department: DeptSales, Title: "Sales Engineer", Salary: 95000, Age: 32, HiredAt: "2019-04-08"},
}
