// Package catalog defines the fixed, ordered table of classification
// categories and their keyword sets.
//
// The catalog order is part of the classification contract: when two
// categories reach the same score for a package, the one listed first
// wins. The table is therefore a slice, never a map, and must not be
// reordered between releases.
package catalog

// Category is one classification category definition.
type Category struct {
	// ID is the stable category identifier used in results and stats.
	ID string

	// Name is the human-facing display name.
	Name string

	Emoji       string
	Description string

	// Keywords are lowercase terms matched against package text.
	Keywords []string
}

// Default returns the built-in category table in its fixed order.
// Callers must not modify the returned definitions.
func Default() []Category {
	return defaultCategories
}

var defaultCategories = []Category{
	{
		ID:          "testing",
		Name:        "🧪 Testing & Quality Assurance",
		Emoji:       "🧪",
		Description: "Testing frameworks, unit testing, automation testing, and quality assurance tools",
		Keywords:    []string{"test", "testing", "unit", "automation", "qa", "quality", "mock", "assertion", "hypium", "spec", "suite"},
	},
	{
		ID:          "ui_components",
		Name:        "🎨 UI Components & Design",
		Emoji:       "🎨",
		Description: "UI components, design systems, layout tools, and visual elements",
		Keywords:    []string{"ui", "component", "design", "layout", "button", "dialog", "picker", "navigation", "tab", "grid", "list", "card", "menu", "banner", "toast", "loading", "refresh", "swipe", "slider", "input", "form", "calendar", "chart", "graph", "visual", "theme", "style", "animation", "transition", "gesture"},
	},
	{
		ID:          "utilities",
		Name:        "🛠️ Utilities & Tools",
		Emoji:       "🛠️",
		Description: "Utility libraries, helper functions, and development tools",
		Keywords:    []string{"util", "tool", "helper", "library", "common", "encrypt", "decrypt", "hash", "string", "date", "time", "regex", "validation", "format", "convert", "parse", "math", "algorithm", "collection", "array", "object", "json", "xml", "csv", "log", "debug", "performance", "cache", "storage", "file", "io"},
	},
	{
		ID:          "networking",
		Name:        "🌐 Networking & APIs",
		Emoji:       "🌐",
		Description: "HTTP clients, API wrappers, networking libraries, and communication tools",
		Keywords:    []string{"http", "api", "request", "axios", "fetch", "network", "rest", "graphql", "websocket", "rpc", "grpc", "client", "server", "protocol", "communication", "socket", "tcp", "udp", "url", "endpoint", "oauth", "auth", "jwt"},
	},
	{
		ID:          "data_persistence",
		Name:        "💾 Data & Storage",
		Emoji:       "💾",
		Description: "Database libraries, data persistence, storage solutions, and data management",
		Keywords:    []string{"database", "db", "storage", "persistence", "sqlite", "sql", "orm", "model", "schema", "migration", "backup", "sync", "crud", "query", "transaction", "cache", "memory", "local", "cloud", "preference", "setting", "config"},
	},
	{
		ID:          "media",
		Name:        "🎵 Media & Multimedia",
		Emoji:       "🎵",
		Description: "Audio, video, image processing, camera, and multimedia handling",
		Keywords:    []string{"media", "audio", "video", "image", "photo", "camera", "player", "recorder", "music", "sound", "voice", "multimedia", "codec", "format", "stream", "play", "capture", "edit", "filter", "effect", "compress", "decode", "encode"},
	},
	{
		ID:          "location_maps",
		Name:        "📍 Location & Maps",
		Emoji:       "📍",
		Description: "GPS, location services, maps, navigation, and geolocation features",
		Keywords:    []string{"location", "gps", "map", "navigation", "geo", "latitude", "longitude", "position", "coordinate", "route", "direction", "distance", "address", "place", "marker", "pin"},
	},
	{
		ID:          "sensors_hardware",
		Name:        "📱 Sensors & Hardware",
		Emoji:       "📱",
		Description: "Device sensors, hardware interfaces, and system capabilities",
		Keywords:    []string{"sensor", "hardware", "accelerometer", "gyroscope", "compass", "barometer", "fingerprint", "biometric", "nfc", "bluetooth", "wifi", "cellular", "battery", "vibration", "light", "proximity", "temperature", "pressure", "device", "system", "capability"},
	},
	{
		ID:          "security",
		Name:        "🔒 Security & Encryption",
		Emoji:       "🔒",
		Description: "Security libraries, encryption, authentication, and privacy tools",
		Keywords:    []string{"security", "encrypt", "decrypt", "cipher", "crypto", "hash", "hmac", "sha", "md5", "aes", "rsa", "ssl", "tls", "certificate", "key", "auth", "authentication", "authorization", "oauth", "jwt", "token", "password", "biometric", "privacy", "secure"},
	},
	{
		ID:          "navigation_routing",
		Name:        "🧭 Navigation & Routing",
		Emoji:       "🧭",
		Description: "App navigation, routing, page transitions, and navigation patterns",
		Keywords:    []string{"navigation", "router", "route", "nav", "page", "screen", "transition", "stack", "tab", "drawer", "bottom", "sidebar", "breadcrumb", "history", "back", "forward", "deep", "link"},
	},
	{
		ID:          "state_management",
		Name:        "🔄 State Management",
		Emoji:       "🔄",
		Description: "State management solutions, data flow, and application state handling",
		Keywords:    []string{"state", "store", "redux", "flux", "observable", "reactive", "model", "data", "flow", "context", "provider", "inject", "dependency", "service", "singleton", "manager"},
	},
	{
		ID:          "internationalization",
		Name:        "🌍 Internationalization & Localization",
		Emoji:       "🌍",
		Description: "i18n, l10n, multi-language support, and localization tools",
		Keywords:    []string{"i18n", "l10n", "international", "localization", "locale", "language", "translation", "translate", "multilingual", "region", "country", "currency", "timezone", "format", "culture"},
	},
	{
		ID:          "animation",
		Name:        "✨ Animation & Effects",
		Emoji:       "✨",
		Description: "Animation libraries, visual effects, transitions, and motion design",
		Keywords:    []string{"animation", "animate", "transition", "effect", "motion", "tween", "spring", "easing", "interpolation", "keyframe", "timeline", "transform", "scale", "rotate", "fade", "slide", "bounce", "elastic", "cubic", "bezier"},
	},
	{
		ID:          "game_graphics",
		Name:        "🎮 Gaming & Graphics",
		Emoji:       "🎮",
		Description: "Game development, 3D graphics, rendering, and interactive experiences",
		Keywords:    []string{"game", "gaming", "3d", "2d", "graphics", "render", "canvas", "webgl", "opengl", "shader", "texture", "mesh", "scene", "physics", "collision", "engine", "sprite", "particle", "lighting", "material"},
	},
	{
		ID:          "social_sharing",
		Name:        "📤 Social & Sharing",
		Emoji:       "📤",
		Description: "Social media integration, sharing capabilities, and social features",
		Keywords:    []string{"social", "share", "sharing", "wechat", "weibo", "qq", "facebook", "twitter", "instagram", "linkedin", "whatsapp", "telegram", "discord", "chat", "message", "comment", "like", "follow", "friend"},
	},
	{
		ID:          "ecommerce_payment",
		Name:        "💰 E-commerce & Payment",
		Emoji:       "💰",
		Description: "Payment processing, e-commerce features, and financial integrations",
		Keywords:    []string{"payment", "pay", "alipay", "wechatpay", "bank", "card", "wallet", "money", "currency", "price", "order", "cart", "shop", "store", "product", "checkout", "invoice", "receipt", "transaction", "finance", "billing"},
	},
	{
		ID:          "ar_vr",
		Name:        "🥽 AR/VR & Immersive",
		Emoji:       "🥽",
		Description: "Augmented reality, virtual reality, and immersive technologies",
		Keywords:    []string{"ar", "vr", "augmented", "virtual", "reality", "immersive", "360", "panorama", "spatial", "tracking", "marker", "recognition", "overlay", "hologram", "mixed"},
	},
	{
		ID:          "ai_ml",
		Name:        "🤖 AI & Machine Learning",
		Emoji:       "🤖",
		Description: "Artificial intelligence, machine learning, and smart features",
		Keywords:    []string{"ai", "ml", "machine", "learning", "neural", "network", "deep", "model", "prediction", "classification", "recognition", "detection", "ocr", "nlp", "computer", "vision", "tensorflow", "pytorch", "opencv", "intelligent", "smart", "algorithm"},
	},
	{
		ID:          "iot",
		Name:        "🏠 IoT & Smart Devices",
		Emoji:       "🏠",
		Description: "Internet of Things, smart home, and connected device integration",
		Keywords:    []string{"iot", "smart", "home", "device", "connected", "sensor", "automation", "control", "monitor", "remote", "wireless", "protocol", "gateway", "hub", "cloud", "edge", "mesh", "zigbee", "mqtt"},
	},
	{
		ID:          "productivity",
		Name:        "📊 Productivity & Business",
		Emoji:       "📊",
		Description: "Productivity tools, business applications, and enterprise solutions",
		Keywords:    []string{"productivity", "business", "enterprise", "office", "document", "pdf", "excel", "word", "presentation", "calendar", "schedule", "task", "project", "workflow", "crm", "erp", "report", "analytics", "dashboard", "chart", "graph", "statistics"},
	},
	{
		ID:          "education",
		Name:        "📚 Education & Learning",
		Emoji:       "📚",
		Description: "Educational apps, learning platforms, and academic tools",
		Keywords:    []string{"education", "learning", "study", "course", "lesson", "tutorial", "quiz", "exam", "test", "grade", "student", "teacher", "school", "university", "academic", "knowledge", "skill", "training", "certification"},
	},
	{
		ID:          "health_fitness",
		Name:        "💪 Health & Fitness",
		Emoji:       "💪",
		Description: "Health monitoring, fitness tracking, and wellness applications",
		Keywords:    []string{"health", "fitness", "medical", "wellness", "exercise", "workout", "sport", "heart", "rate", "step", "calorie", "sleep", "weight", "bmi", "nutrition", "diet", "medicine", "hospital", "doctor", "patient", "therapy"},
	},
	{
		ID:          "communication",
		Name:        "💬 Communication & Messaging",
		Emoji:       "💬",
		Description: "Chat, messaging, voice/video calls, and communication tools",
		Keywords:    []string{"chat", "message", "messaging", "communication", "call", "voice", "video", "conference", "meeting", "talk", "conversation", "notification", "push", "email", "sms", "im", "instant"},
	},
}
