package prompt

// Instruction templates — data only, no logic.

// insightTemplate asks for a marketing analysis of the current trend listing
// as an HTML fragment restricted to a small tag allow-list.
// Args: region, filter context, video summary lines.
const insightTemplate = `역할: 마케팅 데이터 분석가
지역: %s
필터조건: %s

데이터(상위 15개):
%s
분석요청:
1. 현재 트렌드를 관통하는 핵심 키워드 3가지와 그 이유를 꼽아주세요.
2. 조회수 대비 반응률이 좋은 콘텐츠들의 공통적인 특징(제목, 소재 등)을 분석하세요.
3. 마케터가 지금 활용해야 할 숏폼/롱폼 콘텐츠 아이디어 3가지를 제안하세요.
4. 트렌드 유입에 효과적인 해시태그 5개를 선정하세요.

출력형식: HTML 태그(<h3>, <ul>, <li>, <strong>, <span class="highlight">)를 사용하여 가독성 좋게 작성해주세요.
문체: 전문적이면서도 이해하기 쉽게 작성해주세요.`

// storyboardTemplate demands an exact frame count and a fixed JSON schema.
// Args: duration, title, description, tags, source duration, views,
// engagement rate, frame count, frame interval, first frame range,
// frame count, frame count.
const storyboardTemplate = `Role: Expert AI Video Director specializing in viral YouTube Shorts.
Task: Create a cohesive video generation storyboard for a %d-second YouTube Short based on the following video metadata.

Input Data:
- Title: %s
- Original Description: %s
- Tags: %s
- Duration: %d seconds
- Views: %d
- Engagement Rate: %s%%

**Critical Rules for Viral Shorts (Based on Algorithm Analysis):**
1. **Structure**: The video MUST be divided into exactly %d frames (each representing %d seconds).
2. **The Hook (Frame 1)**: Must be visually arresting or pose a question ("Curiosity Gap"). NO boring intros.
3. **Pacing**: Fast and dynamic. Every frame must have specific camera movement (Pan, Zoom, Tracking).
4. **Consistency**: Maintain consistent character/style across all prompts (using --cref or style descriptors).
5. **Vertical Format**: All prompts must specify --ar 9:16 for mobile viewing.
6. **Trend Integration**: Incorporate viral elements from the original video's success factors.

Output JSON Format:
{
  "global_concept": {
    "title": "Viral Short Concept Title",
    "style_prompt": "Cinematic 4k, vertical 9:16, high contrast, vibrant colors",
    "character_prompt": "Description of the main subject to maintain consistency",
    "viral_elements": "Key viral factors extracted from the original video"
  },
  "storyboard": [
    {
      "frame_number": 1,
      "duration": "%s",
      "shot_type": "Close-up / Dynamic Zoom",
      "visual_description": "THE HOOK: Visual description of the opening scene that grabs attention immediately.",
      "lighting": "Dramatic studio lighting",
      "camera_movement": "Fast zoom in with slight shake",
      "full_prompt": "Hyper-realistic video of [Subject doing Action], fast motion, 8k, --ar 9:16 --motion 8"
    },
    ... (Repeat for %d frames)
  ]
}

IMPORTANT: Create exactly %d frames in the storyboard array. Each frame should build upon the previous one to create a cohesive viral narrative.`

// scriptTemplate demands a fixed scene plan and a fixed JSON schema.
// Args: duration, title, channel, source duration, description, tags,
// duration, scene count, duration, final end time, scene plan, duration,
// scene count, duration.
const scriptTemplate = `You are an elite Film Director and Technical Video Analyst specializing in SHORT-FORM content.
Your task is to create a precise %d-second video script with AI generation prompts for tools like Sora, Runway Gen-3, Pika.

**Target Video Metadata:**
- Title: %s
- Channel: %s
- Original Duration: %d seconds
- Description: %s
- Tags: %s

**CRITICAL REQUIREMENT:**
- Create a %d-second short-form video script
- Divide into exactly %d scenes that EXACTLY total %d seconds
- Use EXACTLY the time ranges listed in the scene plan below
- Final scene MUST end at exactly %s

**Scene Plan (fixed — do not change the timing):**
%s
**For Each Scene, Provide:**
- **Exact time_range:** as planned above
- **Camera:** Angles, Movement (Pan/Tilt/Dolly/FPV), Lens type
- **Characters & Costume:** Detailed appearance, clothing, colors
- **Environment:** Location, lighting (Natural/Studio/Neon), atmosphere
- **Action/Direction:** What happens? Pacing?
- **AI Video Prompt:** Optimized for AI video generators with motion/camera parameters

**Output Format (JSON Only):**
{
  "director_notes": {
    "genre": "String (e.g., Vlog, Cinematic, Tech Review)",
    "overall_mood": "String",
    "pacing": "Fast-paced / Dynamic / Smooth",
    "color_grading": "String (e.g., Teal & Orange, Pastel, High Contrast)",
    "target_duration": "%ds"
  },
  "scenes": [
    {
      "time_range": "0:00 - 0:03",
      "section_type": "Hook",
      "visual_description": "Detailed description of what is visible.",
      "technical_details": {
        "camera_angle": "String",
        "camera_movement": "String",
        "lighting": "String",
        "lens_choice": "String"
      },
      "subject_details": {
        "characters": "Description of people (if any)",
        "costume": "Clothing details",
        "acting_direction": "Expression and movement"
      },
      "location_bg": "Background description",
      "video_gen_prompt": "Highly detailed prompt for AI Video Generator. Include --motion or --camera parameters. Example: 'FPV drone shot swooping through neon-lit city streets at night, cinematic lighting, 4K --motion fast --camera dynamic'"
    }
  ]
}

IMPORTANT: Generate exactly %d scenes that EXACTLY total %d seconds. Verify time ranges match the scene plan.`
