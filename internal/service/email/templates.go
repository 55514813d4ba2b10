package email

// Email templates using HTML

const welcomeTemplate = `
<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body style="font-family: -apple-system, 'Segoe UI', Roboto, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px; color: #333;">
    <div style="background: linear-gradient(135deg, #ea580c, #c2410c); color: white; padding: 30px; text-align: center; border-radius: 10px 10px 0 0;">
        <h1 style="margin: 0; font-size: 24px;">Welcome to Moto Frota</h1>
    </div>
    <div style="background: #ffffff; padding: 30px; border: 1px solid #e5e7eb; border-top: none;">
        <p>Hi {{.UserName}},</p>
        <p>Your account <strong>{{.Email}}</strong> is ready. You can now register motorcycles,
        log maintenance and follow your fleet's spending from the dashboard.</p>
        <p><a href="{{.BaseURL}}" style="display: inline-block; background: #ea580c; color: white; padding: 12px 30px; text-decoration: none; border-radius: 6px;">Open dashboard</a></p>
    </div>
    <div style="background: #f9fafb; padding: 20px; text-align: center; font-size: 12px; color: #6b7280; border: 1px solid #e5e7eb; border-top: none; border-radius: 0 0 10px 10px;">
        Moto Frota - fleet maintenance tracking
    </div>
</body>
</html>
`

const alertTemplate = `
<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body style="font-family: -apple-system, 'Segoe UI', Roboto, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px; color: #333;">
    <div style="background: linear-gradient(135deg, #dc2626, #b91c1c); color: white; padding: 30px; text-align: center; border-radius: 10px 10px 0 0;">
        <h1 style="margin: 0; font-size: 24px;">{{.Title}}</h1>
    </div>
    <div style="background: #ffffff; padding: 30px; border: 1px solid #e5e7eb; border-top: none;">
        <p>Hi {{.UserName}},</p>
        <p>{{.Message}}</p>
        <div style="background: #f3f4f6; padding: 20px; border-radius: 8px; margin: 20px 0;">
            <p style="margin: 4px 0;"><span style="color: #6b7280;">Type:</span> <strong>{{.Type}}</strong></p>
            <p style="margin: 4px 0;"><span style="color: #6b7280;">Severity:</span> <strong>{{.Severity}}</strong></p>
        </div>
        <p><a href="{{.BaseURL}}/alerts" style="display: inline-block; background: #dc2626; color: white; padding: 12px 30px; text-decoration: none; border-radius: 6px;">View alerts</a></p>
    </div>
    <div style="background: #f9fafb; padding: 20px; text-align: center; font-size: 12px; color: #6b7280; border: 1px solid #e5e7eb; border-top: none; border-radius: 0 0 10px 10px;">
        Moto Frota - fleet maintenance tracking
    </div>
</body>
</html>
`

const maintenanceDueTemplate = `
<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body style="font-family: -apple-system, 'Segoe UI', Roboto, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px; color: #333;">
    <div style="background: linear-gradient(135deg, #ea580c, #c2410c); color: white; padding: 30px; text-align: center; border-radius: 10px 10px 0 0;">
        <h1 style="margin: 0; font-size: 24px;">Maintenance coming up</h1>
    </div>
    <div style="background: #ffffff; padding: 30px; border: 1px solid #e5e7eb; border-top: none;">
        <p>Hi {{.UserName}},</p>
        {{if .Urgent}}<p style="color: #dc2626;"><strong>This maintenance is due within a week.</strong></p>{{end}}
        <div style="background: #f3f4f6; padding: 20px; border-radius: 8px; margin: 20px 0;">
            <p style="margin: 4px 0;"><span style="color: #6b7280;">Vehicle:</span> <strong>{{.Vehicle}}</strong></p>
            <p style="margin: 4px 0;"><span style="color: #6b7280;">Service:</span> <strong>{{.Title}} ({{.ServiceType}})</strong></p>
            <p style="margin: 4px 0;"><span style="color: #6b7280;">Planned for:</span> <strong>{{.PlannedDate}}</strong></p>
            <p style="margin: 4px 0;"><span style="color: #6b7280;">Days until:</span> <strong>{{.DaysUntil}}</strong></p>
        </div>
        <p><a href="{{.BaseURL}}/maintenance" style="display: inline-block; background: #ea580c; color: white; padding: 12px 30px; text-decoration: none; border-radius: 6px;">View schedule</a></p>
    </div>
    <div style="background: #f9fafb; padding: 20px; text-align: center; font-size: 12px; color: #6b7280; border: 1px solid #e5e7eb; border-top: none; border-radius: 0 0 10px 10px;">
        Moto Frota - fleet maintenance tracking
    </div>
</body>
</html>
`
