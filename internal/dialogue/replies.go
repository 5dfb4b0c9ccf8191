package dialogue

// Canned reply text for every branch of the script. The chat widget renders
// **text** segments as bold; that is the only inline markup the replies use.

const replyEscalation = "I understand you have a more nuanced query, or perhaps prefer to speak with a human directly. I've noted your request, and I'll ensure your message is prioritized for a direct follow-up from one of our specialists right away. Thank you for your patience."

const replyWelcome = "Hello! Welcome to Polymath Code. I'm your dedicated AI assistant, here to streamline your journey with us. How can I assist you with your innovative website, sophisticated app, or custom software solution today?\n\nTo best understand how Polymath Code can empower your vision, could you share the primary focus of your project? Are you exploring:\n- New Website Development\n- Custom Web Application\n- Mobile App Development\n- Software Solution Integration\n- Digital Strategy & Consulting\n- Something else specific?"

const replyWebsiteObjectives = "Excellent. For your website, what are your primary objectives? Are you aiming to:\n- Establish a strong online presence?\n- Generate leads or inquiries?\n- Showcase a portfolio or services?\n- Implement e-commerce capabilities?\n- Or something unique to your business?\n\nAny details about your industry or target audience would also be helpful."

const replyAppScope = "Fascinating. For your custom application, what core problem are you looking to solve, or what innovative functionality do you envision? Could you briefly describe the main purpose or key features you're considering?"

const replyStrategyExploration = "Understood. With digital strategy, we often begin by identifying critical business challenges or growth opportunities. What strategic areas are you most keen to explore with Polymath Code?"

const replyElaborate = "Thank you for letting me know. Could you elaborate a bit more on your specific needs or the nature of the project you have in mind? The more details you can provide, the better I can assist."

const replyAskContact = "Thank you for these valuable details. To ensure a specialist from Polymath Code can connect with you regarding your project, may I please have your full name and preferred email address?"

const replyConfirmEmailFmt = "Just to confirm, your email is **%s**. Is that correct?"

const replyEmailMissing = "My apologies, I seem to have missed your email address. Could you please provide your email so we can reach out?"

const replyLeadCaptured = "Excellent! Your insights are now with our team at Polymath Code. We will carefully review your requirements, and a dedicated specialist will be in touch with you directly within 2-4 business hours.\n\nWe appreciate you choosing Polymath Code to bring your digital vision to life. Is there anything else I can quickly assist you with before I forward your details?"

const replyEmailRetry = "I'm sorry about that! Let's try again. What is your correct email address?"

const replyGoodbye = "Thank you! Have a wonderful day!"

const replyFallback = "My apologies, I seem to have misunderstood. Could you please rephrase that, or provide a little more detail? I want to ensure I capture your needs accurately."
