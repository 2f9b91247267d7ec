package content

import "github.com/blvshy/doodleart-backend/pkg/enums"

var faqEntries = []FAQEntry{
	{
		Question: "Who are we and what we do?",
		Answer:   "Our startup was founded by Sanjana Ghosh, known by her creative pen name blvshy, whose passion for doodling sparked the journey. She is joined by Subhrajit Mukherjee (CTO), who brings the tech backbone to scale our creativity, and Somnil Neogi (CMO), who ensures our doodles reach the right audience in the most impactful way. Together, we blend art, technology, and storytelling into something truly special.",
	},
	{
		Question: "Who are your doodles for?",
		Answer:   "Anyone! Our doodles are perfect for individuals who want personalized art, brands looking to stand out, event organizers needing eye-catching visuals, or even teachers and creators who want engaging content.",
	},
	{
		Question: "What makes your doodles different from others?",
		Answer:   "Our doodles combine creativity, storytelling, and customization. Every doodle is hand-crafted (not just generated), ensuring each piece has a unique touch that reflects your personality or brand.",
	},
	{
		Question: "Do you take custom requests?",
		Answer:   "Yes! You can send us your ideas, themes, or even rough sketches, and we'll turn them into one-of-a-kind doodles.",
	},
	{
		Question: "What formats do you deliver doodles in?",
		Answer:   "We provide high-quality digital files (PNG, JPG, or SVG). On request, we can also arrange prints, stickers, or merchandise.",
	},
	{
		Question: "How much does a doodle cost?",
		Answer:   "Prices vary depending on complexity, size, and usage (personal vs. commercial). We offer simple doodles starting at an affordable rate and custom packages for businesses.",
	},
	{
		Question: "How long does it take to receive a doodle?",
		Answer:   "Most personal doodles are ready within 3–5 business days. Larger projects or bulk orders may take longer, but we'll always share a clear timeline upfront.",
	},
	{
		Question: "Can businesses use your doodles for branding?",
		Answer:   "Absolutely! Our doodles are a great way to add playfulness and originality to brand identities, social media campaigns, and marketing materials.",
	},
}

var teamMembers = []TeamMember{
	{
		Name:        "Sanjana Ghosh",
		Role:        "CEO & Artist",
		Alias:       "blvshy",
		Description: "The creative visionary whose passion for doodling sparked our journey. She transforms ideas into beautiful, hand-crafted art pieces.",
		Image:       "/about/sanjana.jpg",
		Skills:      []string{"Hand-drawn Art", "Creative Direction", "Brand Identity", "Visual Storytelling"},
	},
	{
		Name:        "Subhrajit Mukherjee",
		Role:        "CTO",
		Alias:       "Tech Maestro",
		Description: "The tech architect behind our digital ecosystem. Subhrajit ensures our platform is fast, scalable, and beautifully engineered to showcase creativity seamlessly.",
		Image:       "/about/subhrajit.jpg",
		Skills:      []string{"Next.js & React", "System Architecture", "Automation & AI Integration", "Performance Optimization"},
	},
	{
		Name:        "Somnil Neogi",
		Role:        "CMO",
		Alias:       "Rick",
		Description: "The marketing maestro who ensures our doodles reach the right audience in the most impactful way.",
		Image:       "/about/somnil.jpg",
		Skills:      []string{"Digital Marketing", "Brand Strategy", "Content Creation", "Growth Hacking"},
	},
}

var companyValues = []CompanyValue{
	{Title: "Passion-Driven", Description: "Every doodle is created with love and genuine passion for art"},
	{Title: "Quality First", Description: "We never compromise on the quality and uniqueness of our work"},
	{Title: "Innovation", Description: "Blending traditional art with modern technology and storytelling"},
}

var paymentMethods = []PaymentMethodInfo{
	{ID: enums.PaymentMethodCard, Title: "Card Payments", Description: "Secure payments via credit/debit cards"},
	{ID: enums.PaymentMethodCash, Title: "Cash Payments", Description: "Traditional cash payments accepted"},
	{ID: enums.PaymentMethodComplements, Title: "Compliments", Description: "We love genuine appreciation!"},
}
