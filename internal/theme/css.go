package theme

import (
	"log/slog"
	"strings"
	"text/template"

	"github.com/jmylchreest/dashbrand/internal/branding"
)

// cssTemplate is the :root custom property block that replaces the stock
// palette. Brand colors feed the primary, legacy, background, sidebar, text
// and border variables; everything else is fixed.
var cssTemplate = template.Must(template.New("css").Parse(`
        :root {
            /* ==================== */
            /* Primary Brand Colors */
            /* ==================== */
            --hive-gold-dark: {{.Primary}};     /* Dark gold for text on light */
            --hive-gold: {{.Secondary}};        /* Medium gold for accents */
            --honey-bright: {{.Accent}};        /* Bright gold for highlights */
            
            /* Legacy color names for backwards compatibility */
            --baby-blue: {{.Primary}};
            --grassy-green: {{.Secondary}};
            --sunny-yellow: {{.Accent}};
            
            /* ==================== */
            /* Background Colors    */
            /* ==================== */
            --bg-white: {{.Background}};        /* Pure white for main content */
            --bg-gray-50: #F9FAFB;                                    /* Light gray for secondary panels */
            --bg-gray-100: #F3F4F6;                                   /* Slightly darker for cards */
            --bg-gray-200: #E5E7EB;                                   /* Borders and dividers */
            
            /* Sidebar specific backgrounds (warm tint) */
            --sidebar-bg: {{.Sidebar}};         /* Warm off-white with honey tint */
            --sidebar-hover: #FEF3E2;                                  /* Subtle gold tint on hover */
            --sidebar-active: #FEF7E8;                                 /* Cream background for active items */
            --sidebar-border: #F3E8D8;                                 /* Subtle gold-tinted border */
            
            /* Legacy backgrounds */
            --charcoal: #FFFFFF;                                       /* Inverted for light theme */
            --charcoal-light: #F9FAFB;                                 /* Light gray instead of dark */
            --creamy-white: {{.Background}};
            --background: {{.Background}};
            
            /* ==================== */
            /* Text Colors          */
            /* ==================== */
            --text-primary: {{.Text}};          /* Almost black - body text (16:1) */
            --text-secondary: {{.TextSecondary}}; /* Medium gray - labels (10:1) */
            --text-tertiary: #6B7280;                                  /* Light gray - metadata (7:1) */
            --text-disabled: #9CA3AF;                                  /* Very light gray - disabled (4.6:1) */
            --text-white: #FFFFFF;                                     /* For dark backgrounds */
            
            /* Text on colored backgrounds */
            --text-on-gold: #111827;                                   /* Dark text on gold buttons */
            --text-on-dark: #FFFFFF;                                   /* White text on dark elements */
            
            /* Legacy text colors */
            --dark-text: {{.Text}};
            --medium-text: {{.TextSecondary}};
            --text-gray-200: #E5E7EB;
            --text-gray-300: #D1D5DB;
            --text-gray-400: #9CA3AF;
            --text-gray-600: #4B5563;
            --text-gray-700: #374151;
            --text-gray-900: #111827;
            
            /* ==================== */
            /* Border Colors        */
            /* ==================== */
            --border-light: {{.Border}};        /* Standard borders */
            --border-medium: #D1D5DB;                                  /* Slightly darker borders */
            --border-dark: #9CA3AF;                                    /* Prominent borders */
            --border-gold: {{.Secondary}};      /* Gold borders for emphasis */
            --border-gold-light: rgba(218, 165, 32, 0.3);             /* Subtle gold tinted borders */
            
            /* ==================== */
            /* Shadow Colors        */
            /* ==================== */
            --shadow-sm: 0 1px 2px 0 rgba(0, 0, 0, 0.05);
            --shadow-md: 0 4px 6px -1px rgba(0, 0, 0, 0.1), 0 2px 4px -1px rgba(0, 0, 0, 0.06);
            --shadow-lg: 0 10px 15px -3px rgba(0, 0, 0, 0.1), 0 4px 6px -2px rgba(0, 0, 0, 0.05);
            --shadow-xl: 0 20px 25px -5px rgba(0, 0, 0, 0.1), 0 10px 10px -5px rgba(0, 0, 0, 0.04);
            
            /* Gold shadow for emphasis */
            --shadow-gold: 0 0 20px rgba(218, 165, 32, 0.25);
            --shadow-gold-lg: 0 0 30px rgba(218, 165, 32, 0.3);
            
            /* ==================== */
            /* Interactive States   */
            /* ==================== */
            --hover-bg: #F9FAFB;                                       /* Generic hover background */
            --active-bg: #F3F4F6;                                      /* Generic active background */
            --focus-ring: {{.Secondary}};       /* Gold focus ring */
            
            /* ==================== */
            /* Status Colors        */
            /* ==================== */
            --success: #059669;                                        /* Green for success */
            --success-bg: #D1FAE5;                                     /* Light green background */
            --warning: #D97706;                                        /* Orange for warnings */
            --warning-bg: #FEF3C7;                                     /* Light orange background */
            --error: #DC2626;                                          /* Red for errors */
            --error-bg: #FEE2E2;                                       /* Light red background */
            --info: #2563EB;                                           /* Blue for info */
            --info-bg: #DBEAFE;                                        /* Light blue background */
            
            /* ==================== */
            /* Effect Colors        */
            /* ==================== */
            --glow-gold: rgba(218, 165, 32, 0.3);                     /* Reduced for light theme */
            --glow-honey: rgba(255, 191, 0, 0.25);                    /* Reduced for light theme */
            --border-gold-20: rgba(218, 165, 32, 0.2);
            --border-gold-30: rgba(218, 165, 32, 0.3);
            --bg-gold-10: rgba(218, 165, 32, 0.1);
            --bg-honey-10: rgba(255, 191, 0, 0.1);
            
            /* Overlay colors */
            --overlay-light: rgba(255, 255, 255, 0.95);
            --overlay-dark: rgba(0, 0, 0, 0.5);
            
            /* ==================== */
            /* Additional Colors    */
            /* ==================== */
            --lavender: #C9A0DC;
            --soft-peach: #FFD8B1;
            --light-gray: #E8E8E8;
        }
    `))

// CSSVariables generates the CSS custom property block for b.
// Empty or non-hex colors fall back to the default palette.
func CSSVariables(b *branding.Branding) string {
	colors := safeColors(b)

	var sb strings.Builder
	if err := cssTemplate.Execute(&sb, colors); err != nil {
		// Colors only has string fields; execution cannot fail.
		panic(err)
	}
	return sb.String()
}

func safeColors(b *branding.Branding) branding.Colors {
	def := branding.DefaultColors()
	if b == nil {
		return def
	}

	colors := b.Colors.WithDefaults()
	for _, key := range branding.ColorKeys {
		v, _ := colors.Get(key)
		if branding.IsHexColor(v) {
			continue
		}
		dv, _ := def.Get(key)
		slog.Warn("ignoring invalid brand color", "color", key, "value", v)
		_ = colors.Set(key, dv)
	}
	return colors
}
